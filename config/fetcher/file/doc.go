// Package file implements config.DataFetcher over a single file on disk.
//
// NewFetcher returns a constructor rather than a Fetcher so it can be handed to fx.Provide. The
// constructor stats and reads the file once; every Fetch returns a fresh copy of those bytes, so
// a document edited on disk after start-up is not picked up.
//
//	fetcher, err := file.NewFetcher("plugins/spindle/config.yml")()
//	if err != nil {
//	    return err
//	}
//
// A path naming a directory fails with ErrPathIsDirectory. A missing path fails too, unless
// AllowMissing is passed: the fetcher then reports Exists() == false and Fetch yields no bytes,
// which every parser turns into an empty mapping. spindle.LoadFile relies on this to treat an
// absent file as empty configuration, while Loader.Load checks for the file first and returns
// ErrConfigNotFound instead.
package file
