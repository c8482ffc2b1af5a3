package playblast

// Request holds the transient parameters of one capture invocation.
// OutputDir may contain {project} and Filename may contain {scene};
// both are resolved against live host state at capture time.
type Request struct {
	OutputDir string
	Filename  string

	// Padding is the frame-number width in sequence file names. A
	// non-positive value is replaced with DefaultPadding.
	Padding int

	ShowOrnaments bool
	ShowInViewer  bool
	Overwrite     bool
}
