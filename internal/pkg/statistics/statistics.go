package statistics

import (
	"log"
	"strconv"
	"time"

	"github.com/janmarg/CivicPortal/app/models"
	"github.com/janmarg/CivicPortal/app/repository"
	"github.com/janmarg/CivicPortal/internal/pkg/cache"
)

const (
	CacheKeyComplaintsTotal   = "statistics:complaints:total"
	CacheKeyComplaintsPending = "statistics:complaints:pending"
	CacheKeyComplaintsSolved  = "statistics:complaints:solved"
	CacheKeyCitizens          = "statistics:citizens:total"
	CacheExpiration           = 30 * time.Minute
)

// Data holds the portal counters shown on the dashboards
type Data struct {
	TotalComplaints   int
	PendingComplaints int
	SolvedComplaints  int
	TotalCitizens     int
}

// UpdateStatisticsCache recounts all portal statistics through the
// repositories and stores them in the cache. It is called in a goroutine
// after registrations, filings and resolutions.
func UpdateStatisticsCache() error {
	repos := repository.GetGlobalRepositories()

	totalComplaints, err := repos.Complaint.Count()
	if err != nil {
		log.Printf("Error counting complaints: %v", err)
		return err
	}

	pending, err := repos.Complaint.CountByStatus(models.StatusPending)
	if err != nil {
		log.Printf("Error counting pending complaints: %v", err)
		return err
	}

	solved, err := repos.Complaint.CountByStatus(models.StatusSolved)
	if err != nil {
		log.Printf("Error counting solved complaints: %v", err)
		return err
	}

	citizens, err := repos.Citizen.Count()
	if err != nil {
		log.Printf("Error counting citizens: %v", err)
		return err
	}

	for key, val := range map[string]int64{
		CacheKeyComplaintsTotal:   totalComplaints,
		CacheKeyComplaintsPending: pending,
		CacheKeyComplaintsSolved:  solved,
		CacheKeyCitizens:          citizens,
	} {
		if err := cache.Set(key, strconv.FormatInt(val, 10), CacheExpiration); err != nil {
			log.Printf("Error caching %s: %v", key, err)
			return err
		}
	}

	log.Printf("Statistics updated in cache: complaints=%d pending=%d solved=%d citizens=%d",
		totalComplaints, pending, solved, citizens)
	return nil
}

// cachedCount reads a counter from the cache, recounting from the database on
// a miss.
func cachedCount(key string, recount func() (int64, error)) int {
	val, err := cache.Get(key)
	if err != nil {
		count, err := recount()
		if err != nil {
			log.Printf("Error recounting %s: %v", key, err)
			return 0
		}
		if err := cache.Set(key, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
			log.Printf("Error caching %s: %v", key, err)
		}
		return int(count)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}
	return int(count)
}

// GetTotalComplaints returns the complaint count from cache or database
func GetTotalComplaints() int {
	return cachedCount(CacheKeyComplaintsTotal, func() (int64, error) {
		return repository.GetGlobalRepositories().Complaint.Count()
	})
}

// GetPendingComplaints returns the pending complaint count from cache or database
func GetPendingComplaints() int {
	return cachedCount(CacheKeyComplaintsPending, func() (int64, error) {
		return repository.GetGlobalRepositories().Complaint.CountByStatus(models.StatusPending)
	})
}

// GetSolvedComplaints returns the solved complaint count from cache or database
func GetSolvedComplaints() int {
	return cachedCount(CacheKeyComplaintsSolved, func() (int64, error) {
		return repository.GetGlobalRepositories().Complaint.CountByStatus(models.StatusSolved)
	})
}

// GetTotalCitizens returns the registered citizen count from cache or database
func GetTotalCitizens() int {
	return cachedCount(CacheKeyCitizens, func() (int64, error) {
		return repository.GetGlobalRepositories().Citizen.Count()
	})
}

// GetStatisticsData returns all dashboard counters
func GetStatisticsData() Data {
	return Data{
		TotalComplaints:   GetTotalComplaints(),
		PendingComplaints: GetPendingComplaints(),
		SolvedComplaints:  GetSolvedComplaints(),
		TotalCitizens:     GetTotalCitizens(),
	}
}
