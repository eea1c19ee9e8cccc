// Package cache provides Once, a generic, thread-safe map whose values are
// computed lazily and at most once per key.
//
// Once is meant for data that is expensive to build and never changes for the
// lifetime of the process: parsed dictionaries, compiled templates, decoded
// configuration. There is no capacity limit and no eviction. Entries only
// disappear when the owner calls Forget explicitly.
//
// # Usage
//
//	dicts := cache.NewOnce[string, map[string]string]()
//
//	d := dicts.Get("en_us", func() map[string]string {
//		return loadDictionary("en_us") // runs once for "en_us"
//	})
//
// # Concurrency
//
// When several goroutines call Get for the same missing key, exactly one of
// them runs the loader. The others block until it returns and then observe
// the same value. Loads for different keys run independently and never wait
// on each other.
//
// A loader that panics leaves the key holding the zero value; the panic is
// propagated to the goroutine that ran the loader only.
package cache
