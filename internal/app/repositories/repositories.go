// Package repositories contains the MongoDB data access layer, one repository
// per collection.
package repositories

import "go.mongodb.org/mongo-driver/mongo"

// Repositories bundles every repository for dependency injection.
type Repositories struct {
	Students   *StudentRepository
	Execoms    *ExecomRepository
	Drives     *DriveRepository
	Placements *PlacementRepository
	Alumni     *AlumniRepository
	Bills      *BillRepository
	Queries    *QueryRepository
}

// NewRepositories creates all repositories over one database handle.
func NewRepositories(database *mongo.Database) *Repositories {
	return &Repositories{
		Students:   NewStudentRepository(database),
		Execoms:    NewExecomRepository(database),
		Drives:     NewDriveRepository(database),
		Placements: NewPlacementRepository(database),
		Alumni:     NewAlumniRepository(database),
		Bills:      NewBillRepository(database),
		Queries:    NewQueryRepository(database),
	}
}
