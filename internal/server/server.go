// Package server exposes the color scale widget over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zunguyen/color-interpolation-basic/ease"
	"github.com/zunguyen/color-interpolation-basic/internal/logger"
	"github.com/zunguyen/color-interpolation-basic/widget"
)

var log = logger.New("server")

// Server owns a widget and serializes every event applied to it.
type Server struct {
	mu     sync.Mutex
	widget *widget.Widget
	router *gin.Engine
}

// Event is the JSON form of a UI event.
type Event struct {
	Event string `json:"event" binding:"required,oneof=input curve click"`
	Color string `json:"color"`
	Curve string `json:"curve"`
}

// New returns a server driving w.
func New(w *widget.Widget) *Server {
	s := &Server{widget: w}

	r := gin.New()
	r.Use(gin.Recovery(), requestLog(), securityHeaders(), bodySizeLimit(MaxBodySize))
	r.SetHTMLTemplate(pageTemplate)

	r.GET("/", s.handlePage)
	r.POST("/events/input", s.handleFormEvent)
	r.POST("/events/curve", s.handleFormEvent)
	r.POST("/events/generate", s.handleFormEvent)

	api := r.Group("/api")
	api.GET("/state", s.handleState)
	api.POST("/events", s.handleEvent)
	api.GET("/curves", s.handleCurves)

	r.GET("/plot.svg", s.handlePlot)
	r.GET("/report.svg", s.handleReport)

	s.router = r
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// apply runs one event against the widget and returns the resulting state.
func (s *Server) apply(event, text, curve string) (widget.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch event {
	case "input":
		s.widget.SetInput(text)
	case "curve":
		s.widget.SetCurve(ease.Curve(curve))
	case "click", "generate":
		s.widget.Submit(text, ease.Curve(curve))
	default:
		return widget.State{}, false
	}
	st := s.widget.State()
	if st.Error != "" {
		log.Debug("%s event rejected color %q", event, text)
	}
	return st, true
}

func (s *Server) state() widget.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.widget.State()
}

type pageData struct {
	widget.State
	Curves []ease.Option
	SVG    template.HTML
}

func (s *Server) render(c *gin.Context, st widget.State) {
	c.HTML(http.StatusOK, "page", pageData{
		State:  st,
		Curves: ease.Curves(),
		SVG:    template.HTML(inlineSVG(st.Plot)),
	})
}

// inlineSVG drops the XML prolog so the document can sit inside HTML.
func inlineSVG(doc string) string {
	if i := strings.Index(doc, "<svg"); i > 0 {
		return doc[i:]
	}
	return doc
}

func (s *Server) handlePage(c *gin.Context) {
	s.render(c, s.state())
}

func (s *Server) handleFormEvent(c *gin.Context) {
	event := c.Request.URL.Path[len("/events/"):]
	st, _ := s.apply(event, c.PostForm("color"), c.PostForm("curve"))
	s.render(c, st)
}

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, s.state())
}

func (s *Server) handleEvent(c *gin.Context) {
	var ev Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st, _ := s.apply(ev.Event, ev.Color, ev.Curve)
	c.JSON(http.StatusOK, st)
}

func (s *Server) handleCurves(c *gin.Context) {
	type option struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
	var out []option
	for _, o := range ease.Curves() {
		out = append(out, option{string(o.Curve), o.Label})
	}
	c.JSON(http.StatusOK, gin.H{"curves": out})
}

func (s *Server) handlePlot(c *gin.Context) {
	c.Data(http.StatusOK, "image/svg+xml", []byte(s.state().Plot))
}

func (s *Server) handleReport(c *gin.Context) {
	var buf bytes.Buffer
	s.mu.Lock()
	s.widget.WriteSVG(&buf)
	s.mu.Unlock()
	c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
}
