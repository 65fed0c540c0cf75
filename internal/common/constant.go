package common

// Keys of the three independently stored documents in the key/value medium.
// The names match the browser localStorage keys of the ImobVenda web app, so
// an exported localStorage dump can be loaded as is.
const (
	KeyUsers       = "imob_users"
	KeyProperties  = "imob_properties"
	KeyCurrentUser = "imob_current_user"
)
