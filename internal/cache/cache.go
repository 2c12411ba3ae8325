package cache

// Cache is a bounded key/value set. Implementations are safe for concurrent use.
type Cache interface {
	Get(key interface{}) (interface{}, bool)
	Add(key, value interface{})
	Contains(key interface{}) bool
	Keys() []interface{}
	Delete(key interface{})
	Len() int
}
