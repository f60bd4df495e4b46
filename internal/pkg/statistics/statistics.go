package statistics

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/brightops/BrightOps/app/models"
	"github.com/brightops/BrightOps/internal/pkg/billing"
	"github.com/brightops/BrightOps/internal/pkg/cache"
	"github.com/brightops/BrightOps/internal/pkg/database"
	"github.com/brightops/BrightOps/internal/pkg/metrics/counter"
)

const (
	CacheKeyClients          = "statistics:clients:total"
	CacheKeyFacilities       = "statistics:facilities:total"
	CacheKeyActiveFacilities = "statistics:facilities:active"
	CacheKeyMonthBilledTotal = "statistics:billing:month_total_cents"
	CacheExpiration          = 30 * time.Minute
)

// DashboardData holds the aggregate numbers shown on the admin dashboard.
type DashboardData struct {
	TotalClients         int   `json:"total_clients"`
	TotalFacilities      int   `json:"total_facilities"`
	ActiveFacilities     int   `json:"active_facilities"`
	MonthBilledTotalCent int64 `json:"month_billed_total_cents"`
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// ShouldUpdateCache reports whether the cached statistics are stale.
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the statistics cache when the refresh
// interval has elapsed.
func UpdateCacheIfNeeded() {
	if ShouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		if err := UpdateStatisticsCache(); err != nil {
			log.Printf("Error updating statistics cache: %v", err)
		} else {
			lastCacheUpdate = time.Now()
		}
	}
}

// ResetCacheUpdateTimer forces the next UpdateCacheIfNeeded to refresh.
func ResetCacheUpdateTimer() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	lastCacheUpdate = time.Time{}
}

// UpdateStatisticsCache recomputes all dashboard statistics and stores
// them in the cache. The billed total walks every active client through a
// full preview of the current month, so it is only ever computed here, on
// the cache interval.
func UpdateStatisticsCache() error {
	db := database.GetDB()

	// Drain pending usage counters into MySQL alongside the stats refresh.
	if err := counter.FlushAll(); err != nil {
		log.Printf("Error flushing usage counters: %v", err)
	}

	var totalClients int64
	if err := db.Model(&models.Client{}).Count(&totalClients).Error; err != nil {
		log.Printf("Error counting clients: %v", err)
		return err
	}

	var totalFacilities int64
	if err := db.Model(&models.FacilityProfile{}).Count(&totalFacilities).Error; err != nil {
		log.Printf("Error counting facilities: %v", err)
		return err
	}

	var activeFacilities int64
	if err := db.Model(&models.FacilityProfile{}).
		Where("status = ?", models.FacilityStatusActive).
		Count(&activeFacilities).Error; err != nil {
		log.Printf("Error counting active facilities: %v", err)
		return err
	}

	monthTotal, err := currentMonthBilledTotal()
	if err != nil {
		log.Printf("Error computing month billed total: %v", err)
		return err
	}

	if err := cache.Set(CacheKeyClients, strconv.FormatInt(totalClients, 10), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeyFacilities, strconv.FormatInt(totalFacilities, 10), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeyActiveFacilities, strconv.FormatInt(activeFacilities, 10), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeyMonthBilledTotal, strconv.FormatInt(monthTotal, 10), CacheExpiration); err != nil {
		return err
	}

	log.Printf("Statistics updated in cache: Clients: %d, Facilities: %d (%d active), Month total: %d cents",
		totalClients, totalFacilities, activeFacilities, monthTotal)

	return nil
}

// GetDashboardData returns the cached dashboard numbers, falling back to a
// fresh computation when the cache is cold.
func GetDashboardData() DashboardData {
	data := DashboardData{
		TotalClients:     getCachedInt(CacheKeyClients),
		TotalFacilities:  getCachedInt(CacheKeyFacilities),
		ActiveFacilities: getCachedInt(CacheKeyActiveFacilities),
	}
	if v, err := cache.GetInt64(CacheKeyMonthBilledTotal); err == nil {
		data.MonthBilledTotalCent = v
	}
	return data
}

func getCachedInt(key string) int {
	v, err := cache.GetInt(key)
	if err != nil {
		return 0
	}
	return v
}

// currentMonthBilledTotal sums the preview totals of every active client
// for the current calendar month.
func currentMonthBilledTotal() (int64, error) {
	db := database.GetDB()

	var clients []models.Client
	if err := db.Where("active = ?", true).Find(&clients).Error; err != nil {
		return 0, err
	}

	svc := billing.NewServiceFromDB(db)
	now := time.Now()

	var total int64
	for _, client := range clients {
		preview, err := svc.PreviewMonth(context.Background(), client.UUID, now.Year(), int(now.Month()))
		if err != nil {
			log.Printf("Error previewing client %s: %v", client.UUID, err)
			continue
		}
		total += int64(preview.TotalCents)
	}
	return total, nil
}
