package auth

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/simplelru"

	"github.com/heartbridge/telemetry/devices"
)

var (
	DefaultCacheSize            = 10000           // Cache up to 10000 api keys
	DefaultCacheEntryExpiration = 5 * time.Minute // Cache resolutions for 5 minutes
)

// DeviceResolver resolves the device identified by an api key. Satisfied by
// devices.Service.
type DeviceResolver interface {
	ResolveByApiKey(ctx context.Context, apiKey string) (*devices.Device, error)
}

// NewDeviceResolver returns a resolver that caches successful api key
// resolutions. An api key identifies the same device for the lifetime of the
// device record, so cached entries can only go stale when a device is
// unregistered; the expiration bounds that window.
func NewDeviceResolver(devicesService devices.Service) (DeviceResolver, error) {
	return NewCachingDeviceResolver(DefaultCacheSize, DefaultCacheEntryExpiration, devicesService)
}

type cacheEntry struct {
	device *devices.Device
	expiry time.Time
}

func (c cacheEntry) IsExpired() bool {
	return time.Now().After(c.expiry)
}

type CachingDeviceResolver struct {
	delegate   DeviceResolver
	expiration time.Duration
	lru        *simplelru.LRU
	mu         *sync.Mutex
}

var _ DeviceResolver = &CachingDeviceResolver{}

func NewCachingDeviceResolver(size int, expiration time.Duration, delegate DeviceResolver) (DeviceResolver, error) {
	var onEvict simplelru.EvictCallback
	lru, err := simplelru.NewLRU(size, onEvict)
	if err != nil {
		return nil, err
	}

	return &CachingDeviceResolver{
		delegate:   delegate,
		expiration: expiration,
		lru:        lru,
		mu:         &sync.Mutex{},
	}, nil
}

func (c *CachingDeviceResolver) ResolveByApiKey(ctx context.Context, apiKey string) (*devices.Device, error) {
	if entry := c.getCachedEntry(apiKey); entry != nil {
		return entry.device, nil
	}

	device, err := c.delegate.ResolveByApiKey(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	c.setCacheEntry(apiKey, cacheEntry{
		device: device,
		expiry: time.Now().Add(c.expiration),
	})

	return device, nil
}

func (c *CachingDeviceResolver) getCachedEntry(apiKey string) *cacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.lru.Get(apiKey); ok {
		entry := e.(cacheEntry)
		if entry.IsExpired() {
			c.lru.Remove(apiKey)
			return nil
		}
		return &entry
	}

	return nil
}

func (c *CachingDeviceResolver) setCacheEntry(apiKey string, entry cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.lru.Add(apiKey, entry)
}
