// Package unionfind is a disjoint-set forest over vertices 1..size with
// union by size, in the same 1-origin numbering as package flow.
//
// Besides the usual Root / IsSame / Unite, Labels assigns every group a
// dense ID 1..count so that merged vertices can be contracted into a single
// vertex of a smaller graph:
//
//	uf := unionfind.New(5)
//	uf.Unite(2, 3)
//	labels, count := uf.Labels() // labels[2] == labels[3], count == 4
//	mf := flow.New(count)
//	mf.AddEdge(labels[1], labels[2], 10)
//
// Out-of-range vertices panic with ErrVertexOutOfRange.
package unionfind
