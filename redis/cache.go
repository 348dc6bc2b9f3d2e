package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/slotwise/booking-app/scheduling"
)

// Tenant schedule config (policy + weekly hours) changes rarely but is read
// on every availability query, so it gets a short-lived cache entry that is
// invalidated whenever the tenant saves hours or policy.
const scheduleConfigTTL = 5 * time.Minute

func scheduleConfigKey(tenantID uint) string {
	return fmt.Sprintf("tenant:%d:schedule-config", tenantID)
}

// GetScheduleConfig returns the cached config and whether it was present.
// A nil client (Redis disabled, unit tests) is always a miss.
func GetScheduleConfig(ctx context.Context, tenantID uint) (*scheduling.Config, bool) {
	if Client == nil {
		return nil, false
	}
	data, err := Client.Get(ctx, scheduleConfigKey(tenantID)).Bytes()
	if err != nil {
		return nil, false
	}
	var cfg scheduling.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Failed to decode cached schedule config for tenant %d: %v", tenantID, err)
		return nil, false
	}
	return &cfg, true
}

// SetScheduleConfig stores the config with a TTL. Cache errors are logged and
// swallowed; the database remains the source of truth.
func SetScheduleConfig(ctx context.Context, tenantID uint, cfg *scheduling.Config) {
	if Client == nil {
		return
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		log.Printf("Failed to encode schedule config for tenant %d: %v", tenantID, err)
		return
	}
	if err := Client.Set(ctx, scheduleConfigKey(tenantID), data, scheduleConfigTTL).Err(); err != nil {
		log.Printf("Failed to cache schedule config for tenant %d: %v", tenantID, err)
	}
}

// InvalidateScheduleConfig drops the cached config after hours or policy updates.
func InvalidateScheduleConfig(ctx context.Context, tenantID uint) {
	if Client == nil {
		return
	}
	if err := Client.Del(ctx, scheduleConfigKey(tenantID)).Err(); err != nil {
		log.Printf("Failed to invalidate schedule config for tenant %d: %v", tenantID, err)
	}
}
