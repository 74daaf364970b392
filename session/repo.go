package session

// Durable storage keys. They match the browser localStorage layout of the
// WorkZen web front end so credential state stays interchangeable across
// clients.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyUser         = "user"
)

// Repo defines the durable key/value storage behind the session store.
// The durable copy is a cache of the in-memory session, not a second source
// of truth: it seeds the store on Initialize and is written through on every
// mutation.
type Repo interface {
	// Get retrieves a value by key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores a value, overwriting any previous one.
	Set(key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
}
