package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitclub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_bookings_total",
			Help: "Total number of room bookings created",
		},
		[]string{"kind"},
	)

	BookingConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_booking_conflicts_total",
			Help: "Total number of booking requests rejected for time conflicts",
		},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	AvailabilitySlotsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_availability_slots_total",
			Help: "Total number of trainer availability slots created",
		},
	)

	AvailabilityConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_availability_conflicts_total",
			Help: "Total number of availability slots rejected for overlaps",
		},
	)

	MaintenanceReportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_maintenance_reports_total",
			Help: "Total number of equipment issues reported",
		},
	)

	MaintenanceResolvedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_maintenance_resolved_total",
			Help: "Total number of maintenance records resolved",
		},
	)

	EquipmentOutOfOrder = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitclub_equipment_out_of_order",
			Help: "Number of equipment items currently not operational",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitclub_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(kind string) {
	BookingsTotal.WithLabelValues(kind).Inc()
}

func RecordBookingConflict() {
	BookingConflictsTotal.Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordAvailabilitySlot() {
	AvailabilitySlotsTotal.Inc()
}

func RecordAvailabilityConflict() {
	AvailabilityConflictsTotal.Inc()
}

func RecordMaintenanceReport() {
	MaintenanceReportsTotal.Inc()
}

func RecordMaintenanceResolved() {
	MaintenanceResolvedTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
