// Package planner builds and filters the transfer plan.
//
// A plan is four order-aligned path lists: for index i, SourceFiles[i]
// is one file to copy to DestFiles[i], and SourceDirs[i] is a directory
// whose counterpart DestDirs[i] must exist before files are copied into
// it. Directory entries appear parent before child, in walk order.
package planner

// TransferPlan holds the order-aligned source and destination lists.
type TransferPlan struct {
	SourceDirs  []string
	SourceFiles []string
	DestDirs    []string
	DestFiles   []string
}

// NewTransferPlan creates an empty plan.
func NewTransferPlan() *TransferPlan {
	return &TransferPlan{
		SourceDirs:  []string{},
		SourceFiles: []string{},
		DestDirs:    []string{},
		DestFiles:   []string{},
	}
}

// AddFile appends one (source, destination) file pair.
func (p *TransferPlan) AddFile(source, destination string) {
	p.SourceFiles = append(p.SourceFiles, source)
	p.DestFiles = append(p.DestFiles, destination)
}

// AddDir appends one (source, destination) directory pair.
func (p *TransferPlan) AddDir(source, destination string) {
	p.SourceDirs = append(p.SourceDirs, source)
	p.DestDirs = append(p.DestDirs, destination)
}

// FileCount returns the number of file pairs in the plan.
func (p *TransferPlan) FileCount() int {
	return len(p.SourceFiles)
}

// DirCount returns the number of directory pairs in the plan.
func (p *TransferPlan) DirCount() int {
	return len(p.SourceDirs)
}
