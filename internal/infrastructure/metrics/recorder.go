package metrics

import (
	"net/http"

	"github.com/MikisTh/NutriApp/internal/domain/entities"
	"github.com/MikisTh/NutriApp/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder exports meal plan usage as Prometheus metrics on its own registry.
type Recorder struct {
	registry       *prometheus.Registry
	calorieReports prometheus.Counter
	shoppingLists  prometheus.Counter
	shoppingItems  *prometheus.CounterVec
	lastListCost   prometheus.Gauge
	lastWeekKcal   prometheus.Gauge
}

var _ interfaces.IUsageRecorder = (*Recorder)(nil)

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		calorieReports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nutriapp",
			Name:      "calorie_reports_total",
			Help:      "Calorie reports computed.",
		}),
		shoppingLists: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nutriapp",
			Name:      "shopping_lists_total",
			Help:      "Costed shopping lists computed.",
		}),
		shoppingItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nutriapp",
			Name:      "shopping_items_total",
			Help:      "Shopping list items by price status.",
		}, []string{"price_status"}),
		lastListCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "nutriapp",
			Name:      "last_shopping_list_cost_brl",
			Help:      "Total estimated cost of the last computed shopping list.",
		}),
		lastWeekKcal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "nutriapp",
			Name:      "last_week_kcal",
			Help:      "Weekly kcal of the last computed calorie report.",
		}),
	}
	r.registry.MustRegister(
		r.calorieReports,
		r.shoppingLists,
		r.shoppingItems,
		r.lastListCost,
		r.lastWeekKcal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) ObserveCalorieReport(report entities.CalorieReport) {
	r.calorieReports.Inc()
	r.lastWeekKcal.Set(report.WeekKcal)
}

func (r *Recorder) ObserveShoppingList(list entities.CostedShoppingList) {
	r.shoppingLists.Inc()
	for status, n := range list.CountByStatus() {
		r.shoppingItems.WithLabelValues(string(status)).Add(float64(n))
	}
	r.lastListCost.Set(list.TotalEstimatedCost)
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
