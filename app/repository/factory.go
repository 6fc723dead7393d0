package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Repositories bundles all repository instances
type Repositories struct {
	Citizen   CitizenRepository
	Officer   OfficerRepository
	Complaint ComplaintRepository
}

// NewRepositories creates all repositories from one DB handle
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Citizen:   NewCitizenRepository(db),
		Officer:   NewOfficerRepository(db),
		Complaint: NewComplaintRepository(db),
	}
}

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetCitizenRepository returns the citizen repository instance
func (f *Factory) GetCitizenRepository() CitizenRepository {
	return f.GetRepositories().Citizen
}

// GetOfficerRepository returns the officer repository instance
func (f *Factory) GetOfficerRepository() OfficerRepository {
	return f.GetRepositories().Officer
}

// GetComplaintRepository returns the complaint repository instance
func (f *Factory) GetComplaintRepository() ComplaintRepository {
	return f.GetRepositories().Complaint
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
