package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PassGenerationDuration tracks wallet pass generation per platform
	PassGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "wallet_pass_generation_duration_seconds",
			Help: "Duration of wallet pass generation in seconds",
			Buckets: []float64{
				0.05, // 50ms
				0.1,  // 100ms
				0.25, // 250ms
				0.5,  // 500ms
				1.0,  // 1s
				2.5,  // 2.5s
				5.0,  // 5s
				10.0, // 10s
				30.0, // 30s
			},
		},
		[]string{"platform", "status"},
	)

	// DeviceNotifications counts APNs pushes sent after scanner updates
	DeviceNotifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_device_notifications_total",
			Help: "APNs update notifications by outcome",
		},
		[]string{"status"},
	)

	// RegisteredDevices counts device registration changes
	RegisteredDevices = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_device_registrations_total",
			Help: "PassKit device registration changes by action",
		},
		[]string{"action"},
	)
)

// RecordPassGeneration records the duration of one generation attempt
func RecordPassGeneration(platform, status string, duration float64) {
	PassGenerationDuration.WithLabelValues(platform, status).Observe(duration)
}

func RecordNotifications(sent, failed int) {
	DeviceNotifications.WithLabelValues("sent").Add(float64(sent))
	DeviceNotifications.WithLabelValues("failed").Add(float64(failed))
}

func RecordRegistration(action string) {
	RegisteredDevices.WithLabelValues(action).Inc()
}
