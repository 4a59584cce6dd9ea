// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// The client is opened once in ConnectDB and shared by every request.
type DBDeps struct {
	WeShareMongoClient   *mongo.Client
	WeShareMongoDatabase *mongo.Database
}
