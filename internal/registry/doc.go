// Package registry implements identity-gated record registries.
//
// A registry allocates strictly increasing record ids, stores records keyed by
// id, and permits mutation only when its authorization policy allows the
// caller. Two registries are built from the same parts: assets, which only
// their owner may update, and restaurants, which anyone may register but only
// a fixed administrator may verify.
package registry
