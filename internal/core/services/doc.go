// Package services implements the driving port interfaces.
// Services contain the site logic: building the search index from the
// loaded content, matching queries against it, and serving the directory,
// programme, forms and settings on top of the same content snapshot.
//
// BuildIndex and Match are pure functions; everything else reads through
// a shared ContentCache.
package services
