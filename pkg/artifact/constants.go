// pkg/artifact/constants.go
package artifact

// Kind describes how the source artifact is packed
type Kind string

const (
	KindPlain Kind = "plain"
	KindXZ    Kind = "xz"
	KindNAR   Kind = "nar"
	KindNARXZ Kind = "nar.xz"
)

const (
	xzExt  = ".xz"
	narExt = ".nar"
)
