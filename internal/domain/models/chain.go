// internal/domain/models/chain.go
package models

// Chain is a referral/investment tree definition from the chains collection.
// RootNode is the _id of the root document in the chain's own node
// collection (see TreeNodeCollection). Its BSON type is whatever the
// platform stored, so it is kept untyped and passed back verbatim.
type Chain struct {
	ID         any     `bson:"_id" json:"id"`
	Name       string  `bson:"name" json:"name"`
	SeedAmount float64 `bson:"seedAmount" json:"seedAmount"`
	RootNode   any     `bson:"rootNode,omitempty" json:"rootNode,omitempty"`
}

// TreeNode is one node of a chain tree. Only the aggregate member count is
// read by this service.
type TreeNode struct {
	ID           any   `bson:"_id" json:"id"`
	TotalMembers int64 `bson:"totalMembers" json:"totalMembers"`
}

// TreeNodeCollection returns the name of the collection holding the nodes
// of the named chain.
func TreeNodeCollection(chainName string) string {
	return "treeNodes" + chainName
}
