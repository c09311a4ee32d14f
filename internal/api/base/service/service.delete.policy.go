package baseservice

// DeletePolicy decides what a delete operation does for a collection.
// Soft deletes flip FlagField to false and keep the document; hard
// deletes remove it.
type DeletePolicy struct {
	Soft      bool
	FlagField string
}

// deletePolicies is the single place delete behavior is configured.
// Collections absent from the table are hard-deleted.
var deletePolicies = map[string]DeletePolicy{
	"events":      {Soft: true, FlagField: "isActive"},
	"galleries":   {Soft: true, FlagField: "isPublic"},
	"teammembers": {Soft: true, FlagField: "isActive"},

	"donations":  {},
	"posts":      {},
	"volunteers": {},
	"settings":   {},
	"documents":  {},
	"admins":     {},
}

// PolicyFor returns the delete policy of a collection.
func PolicyFor(collectionName string) DeletePolicy {
	return deletePolicies[collectionName]
}
