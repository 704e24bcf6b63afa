package endpoints

// awsPartitions is the compiled-in AWS endpoint catalog. Order matters: the
// first partition is the default partition and region matching tests the
// rules in this order.
//
// The data is a curated subset of the public AWS endpoint metadata. Hostname
// and SSLCommonName values are templates; see Attributes.
var awsPartitions = []Partition{
	{
		Name:        "aws",
		RegionRegex: `^(us|eu|ap|sa|ca|me|af)\-\w+\-\d+$`,
		DNSSuffix:   "amazonaws.com",
		Defaults: Attributes{
			Hostname:          "{service}.{region}.{dnsSuffix}",
			Protocols:         []string{"https"},
			SignatureVersions: []string{"v4"},
		},
		Services: map[string]Service{
			"dynamodb": {
				Defaults: &Attributes{
					Protocols: []string{"http", "https"},
				},
				Endpoints: map[string]Attributes{
					"local": {
						Hostname:  "localhost:8000",
						Protocols: []string{"http"},
					},
				},
			},
			"ec2": {
				Defaults: &Attributes{
					Protocols: []string{"http", "https"},
				},
			},
			"iam": {
				// IAM is not regionalized; only the global endpoint exists.
				Endpoints: map[string]Attributes{
					"aws-global": {
						Hostname: "iam.{dnsSuffix}",
					},
				},
			},
			"lambda": {
				Defaults: &Attributes{},
			},
			"s3": {
				Defaults: &Attributes{
					SignatureVersions: []string{"s3v4"},
				},
				Endpoints: map[string]Attributes{
					"us-east-1": {
						Hostname:      "s3.{dnsSuffix}",
						SSLCommonName: "*.s3.{dnsSuffix}",
					},
				},
			},
			"sns": {
				Defaults: &Attributes{
					Protocols: []string{"http", "https"},
				},
			},
			"sqs": {
				Defaults: &Attributes{
					Protocols:     []string{"http", "https"},
					SSLCommonName: "{region}.queue.{dnsSuffix}",
				},
				Endpoints: map[string]Attributes{
					"us-east-1": {
						SSLCommonName: "queue.{dnsSuffix}",
					},
				},
			},
			"ssm": {
				Defaults: &Attributes{},
			},
			"sts": {
				Defaults: &Attributes{},
			},
		},
	},
	{
		Name:        "aws-cn",
		RegionRegex: `^cn\-\w+\-\d+$`,
		DNSSuffix:   "amazonaws.com.cn",
		Defaults: Attributes{
			Hostname:          "{service}.{region}.{dnsSuffix}",
			Protocols:         []string{"https"},
			SignatureVersions: []string{"v4"},
		},
		Services: map[string]Service{
			"dynamodb": {
				Defaults: &Attributes{
					Protocols: []string{"http", "https"},
				},
			},
			"ec2": {
				Defaults: &Attributes{
					Protocols: []string{"http", "https"},
				},
			},
			"sns": {
				Defaults: &Attributes{
					Protocols: []string{"http", "https"},
				},
			},
			"sqs": {
				Defaults: &Attributes{
					Protocols:     []string{"http", "https"},
					SSLCommonName: "{region}.queue.{dnsSuffix}",
				},
			},
			"ssm": {
				Defaults: &Attributes{},
			},
			"sts": {
				Defaults: &Attributes{},
			},
		},
	},
	{
		Name:        "aws-us-gov",
		RegionRegex: `^us\-gov\-\w+\-\d+$`,
		DNSSuffix:   "amazonaws.com",
		Defaults: Attributes{
			Hostname:          "{service}.{region}.{dnsSuffix}",
			Protocols:         []string{"https"},
			SignatureVersions: []string{"v4"},
		},
		Services: map[string]Service{
			"dynamodb": {
				Defaults: &Attributes{
					Protocols: []string{"http", "https"},
				},
			},
			"ec2": {
				Defaults: &Attributes{
					Protocols: []string{"http", "https"},
				},
			},
			"s3": {
				Defaults: &Attributes{
					SignatureVersions: []string{"s3", "s3v4"},
				},
			},
			"sns": {
				Defaults: &Attributes{
					Protocols: []string{"http", "https"},
				},
			},
			"sqs": {
				Defaults: &Attributes{
					Protocols:     []string{"http", "https"},
					SSLCommonName: "{region}.queue.{dnsSuffix}",
				},
			},
			"ssm": {
				Defaults: &Attributes{},
			},
			"sts": {
				Defaults: &Attributes{},
			},
		},
	},
}
