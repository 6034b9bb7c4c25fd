package server

import (
	"bytes"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"GoldSentinel/internal/chart"
	"GoldSentinel/internal/converter"
	"GoldSentinel/internal/dashboard"
	"GoldSentinel/internal/export"
	"GoldSentinel/internal/recorder"
)

func (s *Server) dashboard(c *gin.Context) {
	unit, ok := s.unit(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dashboard.Build(s.store.Snapshot(), unit, s.cfg.Options))
}

// convert converts a USD per Troy Ounce price. rate defaults to the latest
// fetched exchange rate.
func (s *Server) convert(c *gin.Context) {
	unit, ok := s.unit(c)
	if !ok {
		return
	}
	price, err := strconv.ParseFloat(c.Query("price"), 64)
	if err != nil || !finite(price) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a finite number"})
		return
	}
	rate, _ := dashboard.ExchangeRate(s.store.Snapshot(), s.defaultRate())
	if v := c.Query("rate"); v != "" {
		rate, err = strconv.ParseFloat(v, 64)
		if err != nil || !finite(rate) || rate <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rate must be a positive finite number"})
			return
		}
	}
	out := converter.Convert(price, unit, rate)
	if !finite(out.Price) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "converted price is out of range"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s *Server) export(c *gin.Context) {
	saver := export.NewSaver(c.Param("format"))
	if saver == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unsupported format %q", c.Param("format"))})
		return
	}
	unit, ok := s.unit(c)
	if !ok {
		return
	}

	snap := s.store.Snapshot()
	if snap.Daily == nil || len(snap.Daily.Data) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": chart.ErrNoData.Error()})
		return
	}
	rate, _ := dashboard.ExchangeRate(snap, s.defaultRate())
	points := dashboard.Series(snap, unit, rate)

	var buf bytes.Buffer
	if err := saver.Write(&buf, export.Rows(points, unit)); err != nil {
		s.log.Errorf("export %s: %v", saver.Extension(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="xauusd_%s.%s"`, unit, saver.Extension()))
	c.Data(http.StatusOK, saver.ContentType(), buf.Bytes())
}

func (s *Server) defaultRate() float64 {
	if s.cfg.Options.DefaultRate > 0 {
		return s.cfg.Options.DefaultRate
	}
	return dashboard.FallbackExchangeRate
}

const (
	defaultHistoryLimit = 30
	maxHistoryLimit     = 365
)

// predictions lists recorded next-day forecasts, latest first.
func (s *Server) predictions(c *gin.Context) {
	if s.cfg.History == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "prediction history is not enabled"})
		return
	}
	limit := defaultHistoryLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxHistoryLimit)
	}
	events, err := s.cfg.History.RecentPredictions(c.Request.Context(), limit)
	if err != nil {
		s.log.Errorf("prediction history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "history unavailable"})
		return
	}
	if events == nil {
		events = []recorder.PredictionEvent{}
	}
	c.JSON(http.StatusOK, events)
}
