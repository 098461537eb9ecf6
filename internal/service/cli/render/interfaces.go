package render

// Renderer shows progress of long CLI operations.
type Renderer interface {
	// WithSpinner displays title while fn is running.
	WithSpinner(title string, fn func())
}
