package identity

// Claim types issued and read by the framework.
const (
	ClaimUserID               = "dnt:user_id"
	ClaimUserName             = "dnt:user_name"
	ClaimTenantID             = "dnt:tenant_id"
	ClaimTenantName           = "dnt:tenant_name"
	ClaimBranchID             = "dnt:branch_id"
	ClaimImpersonatorUserID   = "dnt:impersonator_user_id"
	ClaimImpersonatorTenantID = "dnt:impersonator_tenant_id"
	ClaimPermission           = "dnt:permission"
	ClaimRole                 = "dnt:role"
	ClaimGivenName            = "dnt:given_name"
	ClaimSurname              = "dnt:surname"
	ClaimSerialNumber         = "dnt:serial_number"
)
