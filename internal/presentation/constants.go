package presentation

const (
	// KeyPrincipal is the echo context key under which the auth middleware
	// stores the authenticated principal id.
	KeyPrincipal = "principal"

	AuthKey = "Authorization"
	TypeKey = "Content-Type"

	// Multipart form field names of the upload endpoint.
	FileField         = "file"
	AssetTypeField    = "asset_type"
	PurposeField      = "purpose"
	OwnerContextField = "owner_context_id"
)
