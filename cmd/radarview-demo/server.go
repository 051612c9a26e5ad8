package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/satindergrewal/radarview"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/time/rate"
)

// ---------- JSON types ----------

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type labelJSON struct {
	Text   string    `json:"text"`
	Origin pointJSON `json:"origin"`
	Align  string    `json:"align"`
}

type sceneJSON struct {
	Center   pointJSON      `json:"center"`
	Radius   float64        `json:"radius"`
	Rings    [][]pointJSON  `json:"rings"`
	Spokes   [][2]pointJSON `json:"spokes"`
	Labels   []labelJSON    `json:"labels"`
	Polygon  []pointJSON    `json:"polygon"`
	Markers  []pointJSON    `json:"markers"`
	Values   []float64      `json:"values"`
	Selected int            `json:"selected"`
	Version  int            `json:"version"`
	Font     string         `json:"font"`
	Style    styleJSON      `json:"style"`
}

type styleJSON struct {
	Background   string  `json:"background"`
	Grid         string  `json:"grid"`
	Spoke        string  `json:"spoke"`
	Fill         string  `json:"fill"`
	Outline      string  `json:"outline"`
	Marker       string  `json:"marker"`
	Label        string  `json:"label"`
	LineWidth    float64 `json:"lineWidth"`
	MarkerRadius float64 `json:"markerRadius"`
}

type sizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type pointerRequest struct {
	Type string  `json:"type"` // "down", "move", "up"
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type pointerResponse struct {
	Consumed bool      `json:"consumed"`
	Values   []float64 `json:"values"`
	Selected int       `json:"selected"`
	Version  int       `json:"version"`
}

// faceMeasurer measures label text with the same fixed-size face the web
// page draws with.
type faceMeasurer struct {
	face font.Face
}

func (m faceMeasurer) MeasureString(s string) (float64, float64) {
	w := font.MeasureString(m.face, s).Ceil()
	h := m.face.Metrics().Height.Ceil()
	return float64(w), float64(h)
}

// server shares one widget between concurrent HTTP handlers. Every access
// holds mu: the widget itself does no locking.
type server struct {
	mu       sync.Mutex
	widget   *radarview.Widget
	measurer radarview.TextMeasurer
	style    radarview.Style
	moves    *rate.Limiter
	version  int // bumped on every redraw request
}

// newServer builds a server for cfg. Pointer moves beyond moveLimit per
// second are acknowledged but not applied; the next applied move still
// measures from the last applied point, so no drag distance is lost.
func newServer(cfg radarview.Config, moveLimit rate.Limit) (*server, error) {
	s := &server{
		measurer: faceMeasurer{face: basicfont.Face7x13},
		style:    demoStyle(),
		moves:    rate.NewLimiter(moveLimit, 1),
	}
	w, err := radarview.NewWidget(cfg, func() { s.version++ })
	if err != nil {
		return nil, err
	}
	s.widget = w
	return s, nil
}

func (s *server) routes(web http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("POST /api/size", s.handleSize)
	mux.HandleFunc("POST /api/pointer", s.handlePointer)
	mux.Handle("/", web)
	return mux
}

func (s *server) handleScene(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := s.sceneLocked()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleSize(w http.ResponseWriter, r *http.Request) {
	var req sizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad size request: "+err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.widget.OnSizeChanged(req.Width, req.Height)
	s.version++
	resp := s.sceneLocked()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

var errPointerType = errors.New(`type must be "down", "move" or "up"`)

func (s *server) handlePointer(w http.ResponseWriter, r *http.Request) {
	var req pointerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad pointer request: "+err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var consumed bool
	switch req.Type {
	case "down":
		consumed = s.widget.OnPointerDown(req.X, req.Y)
	case "move":
		if !s.moves.Allow() {
			consumed = s.widget.Controller().State() == radarview.Dragging
			break
		}
		consumed = s.widget.OnPointerMove(req.X, req.Y)
	case "up":
		s.widget.OnPointerUp()
		consumed = true
	default:
		http.Error(w, errPointerType.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, pointerResponse{
		Consumed: consumed,
		Values:   s.widget.Chart().Values(),
		Selected: s.widget.Controller().Selected(),
		Version:  s.version,
	})
}

// sceneLocked builds the scene payload. Callers hold s.mu.
func (s *server) sceneLocked() sceneJSON {
	sc := s.widget.Scene(s.measurer)
	resp := sceneJSON{
		Center:   toJSON(sc.Center),
		Radius:   sc.Radius,
		Rings:    make([][]pointJSON, len(sc.Rings)),
		Spokes:   make([][2]pointJSON, len(sc.Spokes)),
		Labels:   make([]labelJSON, len(sc.Labels)),
		Polygon:  pointsJSON(sc.Polygon),
		Markers:  pointsJSON(sc.Markers),
		Values:   s.widget.Chart().Values(),
		Selected: s.widget.Controller().Selected(),
		Version:  s.version,
		Font:     "13px monospace",
		Style:    toStyleJSON(s.style),
	}
	for i, ring := range sc.Rings {
		resp.Rings[i] = pointsJSON(ring.Points)
	}
	for i, sp := range sc.Spokes {
		resp.Spokes[i] = [2]pointJSON{toJSON(sp.From), toJSON(sp.To)}
	}
	for i, l := range sc.Labels {
		resp.Labels[i] = labelJSON{Text: l.Text, Origin: toJSON(l.Origin), Align: l.Align.String()}
	}
	return resp
}

// demoStyle scales the default palette down to the browser's 13px text.
func demoStyle() radarview.Style {
	st := radarview.DefaultStyle()
	st.LineWidth = 2
	st.MarkerRadius = 5
	st.FontSize = 13
	return st
}

func toStyleJSON(st radarview.Style) styleJSON {
	return styleJSON{
		Background:   st.Background.Hex(),
		Grid:         st.Grid.Hex(),
		Spoke:        st.Spoke.Hex(),
		Fill:         st.Fill.Hex(),
		Outline:      st.Outline.Hex(),
		Marker:       st.Marker.Hex(),
		Label:        st.Label.Hex(),
		LineWidth:    st.LineWidth,
		MarkerRadius: st.MarkerRadius,
	}
}

func toJSON(p radarview.Point) pointJSON {
	return pointJSON{X: p.X, Y: p.Y}
}

func pointsJSON(pts []radarview.Point) []pointJSON {
	out := make([]pointJSON, len(pts))
	for i, p := range pts {
		out[i] = toJSON(p)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// demoTLSConfig returns a TLS configuration serving a fresh self-signed
// ECDSA certificate for hosts, valid from a few minutes ago for ttl.
// Hosts that parse as IP addresses become IP SANs, the rest DNS names.
func demoTLSConfig(hosts []string, ttl time.Duration) (*tls.Config, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return nil, fmt.Errorf("serial: %w", err)
	}

	now := time.Now()
	tmpl := &x509.Certificate{
		SerialNumber: serial,
		Subject:      pkix.Name{CommonName: "radarview-demo"},
		NotBefore:    now.Add(-5 * time.Minute),
		NotAfter:     now.Add(ttl),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			tmpl.IPAddresses = append(tmpl.IPAddresses, ip)
		} else if h != "" {
			tmpl.DNSNames = append(tmpl.DNSNames, h)
		}
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}
	return &tls.Config{
		Certificates: []tls.Certificate{{Certificate: [][]byte{der}, PrivateKey: key}},
	}, nil
}

// lanAddr returns the first non-loopback IPv4 address, or "127.0.0.1".
func lanAddr() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, a := range addrs {
		if ipnet, ok := a.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ip4 := ipnet.IP.To4(); ip4 != nil {
				return ip4.String()
			}
		}
	}
	return "127.0.0.1"
}
