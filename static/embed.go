// Package static holds the stylesheet, script and images served under /static/.
package static

import "embed"

//go:embed css js images
var FS embed.FS
