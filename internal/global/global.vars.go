// Package global holds the process-wide state initialized once at boot:
// server configuration, the mongo client, the validator instance and the
// collection registry.
package global

import (
	"ngo_portal/config"
	"ngo_portal/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionNames lists the mongo collections of the portal. The names
// are filled by InitColNames at boot and are the keys used in
// RegistryCollections and the delete-policy table.
type CollectionNames struct {
	Donations   string
	Events      string
	Galleries   string
	Posts       string
	Volunteers  string
	Settings    string
	Admins      string
	Documents   string
	TeamMembers string
}

var (
	Validate     *validator.Validate
	MongoSession *mongo.Client
	ServerConfig *config.Configuration
	ColNames     CollectionNames
)

// RegistryCollections maps collection names to live collection handles.
// Filled at process start; no lazy lookups at request time.
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
