package config

import "time"

// AutoCloseDuration parses AutoClose; empty means the notice stays open.
func (n Notifications) AutoCloseDuration() (time.Duration, error) {
	if n.AutoClose == "" {
		return 0, nil
	}
	return time.ParseDuration(n.AutoClose)
}
