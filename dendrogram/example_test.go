package dendrogram_test

import (
	"fmt"

	"github.com/katalvlaran/vrg/dendrogram"
)

// ExampleParse reads the text form and reports the root cluster size.
func ExampleParse() {
	tr, err := dendrogram.Parse("((0 1) (2 3) 4)")
	if err != nil {
		fmt.Println(err)
		return
	}
	root, _ := tr.Node(tr.Root())
	fmt.Println(root.NLeaf, tr.LeafKeys())
	// Output: 5 [0 1 2 3 4]
}
