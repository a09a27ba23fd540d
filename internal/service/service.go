// Package service holds the coach and athlete use cases on top of the
// repositories, the live athlete snapshot and object storage.
package service

//go:generate mockgen -destination=repository_mocks_test.go -package=service_test github.com/andrevictorbritodeandrade-alt/abfit/internal/repository AthleteRepository,PhotoRepository,UserRepository
//go:generate mockgen -destination=storage_mocks_test.go -package=service_test github.com/andrevictorbritodeandrade-alt/abfit/internal/storage FileStorage
//go:generate mockgen -destination=snapshot_mocks_test.go -package=service_test github.com/andrevictorbritodeandrade-alt/abfit/internal/service AthleteSnapshot
