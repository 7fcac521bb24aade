package exclusions

// builtinRules covers resources AWS creates in every account. The list is
// maintained by hand and lags behind AWS; pass an external YAML table to
// extend or replace it.
var builtinRules = []Rule{
	{ResourceType: "AWS::Athena::DataCatalog", Identifier: "AwsDataCatalog", Note: "default Glue data catalog"},
	{ResourceType: "AWS::Athena::WorkGroup", Identifier: "primary", Note: "default Athena workgroup"},
	{ResourceType: "AWS::CodeDeploy::DeploymentConfig", Identifier: "CodeDeployDefault.*", Note: "managed deployment configs"},
	{ResourceType: "AWS::DMS::ReplicationSubnetGroup", Identifier: "default*", Note: "default replication subnet group"},
	{ResourceType: "AWS::ECS::CapacityProvider", Identifier: "FARGATE*", Note: "managed Fargate capacity providers"},
	{ResourceType: "AWS::ElastiCache::ParameterGroup", Identifier: "default.*", Note: "default cache parameter groups"},
	{ResourceType: "AWS::Events::EventBus", Identifier: "default", Note: "default event bus"},
	{ResourceType: "AWS::IAM::Role", Identifier: "AWSServiceRoleFor*", Note: "service-linked roles"},
	{ResourceType: "AWS::IAM::ServiceLinkedRole", Identifier: "*", Note: "service-linked roles"},
	{ResourceType: "AWS::KMS::Alias", Identifier: "alias/aws/*", Note: "AWS managed key aliases"},
	{ResourceType: "AWS::MemoryDB::ACL", Identifier: "open-access", Note: "default MemoryDB ACL"},
	{ResourceType: "AWS::MemoryDB::ParameterGroup", Identifier: "default.*", Note: "default MemoryDB parameter groups"},
	{ResourceType: "AWS::RAM::Permission", Identifier: "arn:*:ram::aws:permission/*", Note: "AWS managed RAM permissions"},
	{ResourceType: "AWS::RDS::DBClusterParameterGroup", Identifier: "default.*", Note: "default cluster parameter groups"},
	{ResourceType: "AWS::RDS::DBParameterGroup", Identifier: "default.*", Note: "default DB parameter groups"},
	{ResourceType: "AWS::RDS::OptionGroup", Identifier: "default:*", Note: "default option groups"},
	{ResourceType: "AWS::Redshift::ClusterParameterGroup", Identifier: "default.*", Note: "default Redshift parameter groups"},
	{ResourceType: "AWS::Route53Resolver::ResolverRule", Identifier: "rslvr-autodefined-rr-internet-resources", Note: "autodefined internet resolver rule"},
	{ResourceType: "AWS::S3::StorageLens", Identifier: "default-account-dashboard", Note: "default Storage Lens dashboard"},
	{ResourceType: "AWS::SSM::PatchBaseline", Identifier: "AWS-*", Note: "AWS provided patch baselines"},
	{ResourceType: "AWS::XRay::Group", Identifier: "Default", Note: "default X-Ray group"},
}
