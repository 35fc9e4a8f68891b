// Package devserver is an in-memory stand-in for the field-service backend.
//
// It serves the same routes as the real API, including its quirks: success
// is signalled by omitting the "success" flag, some creations answer
// {"success": false, "message": "... successfully ..."}, and errors carry an
// "error" field. It backs the end-to-end tests and cmd/devserver.
package devserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/fieldkeeper/internal/logging"
	"github.com/dmitrijs2005/fieldkeeper/internal/shared"
	"github.com/gorilla/mux"
)

const DefaultOTP = "123456"

type Options struct {
	// OTP is the code accepted by verify-otp. Empty means DefaultOTP.
	OTP    string
	Logger logging.Logger
}

type Server struct {
	mu sync.Mutex

	otp      string
	pending  map[string]bool           // contacts with an outstanding OTP
	sessions map[string]map[string]any // token -> user
	nextID   int

	complaints []map[string]any
	customers  []map[string]any
	leaves     []map[string]any
	attendance []map[string]any
	amcs       []map[string]any

	log logging.Logger
}

func New(opts Options) *Server {
	s := &Server{
		otp:      opts.OTP,
		pending:  make(map[string]bool),
		sessions: make(map[string]map[string]any),
		nextID:   100,
		log:      opts.Logger,
	}
	if s.otp == "" {
		s.otp = DefaultOTP
	}
	if s.log == nil {
		s.log = logging.NewDiscard()
	}
	s.seed()
	return s
}

func (s *Server) seed() {
	s.customers = []map[string]any{
		{"id": 1, "name": "Acme Traders", "phone_number": "9876500001", "email": "ops@acme.example", "city": "Pune"},
		{"id": 2, "name": "Shree Cold Storage", "phone_number": "9876500002", "city": "Nashik"},
	}
	s.complaints = []map[string]any{
		{"id": 10, "complaint_id": "C-100", "customer_name": "Acme Traders", "complaint_type": "Electrical", "priority": "High", "status": "open", "description": "Compressor tripping"},
	}
}

// Router wires all backend routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	auth := r.PathPrefix("/auth/api/mobile").Subrouter()
	auth.HandleFunc("/generate-otp/", s.handleGenerateOTP).Methods(http.MethodPost)
	auth.HandleFunc("/resend-otp/", s.handleGenerateOTP).Methods(http.MethodPost)
	auth.HandleFunc("/verify-otp/", s.handleVerifyOTP).Methods(http.MethodPost)
	auth.Handle("/logout/", s.requireToken(http.HandlerFunc(s.handleLogout))).Methods(http.MethodPost)

	c := r.PathPrefix("/complaints/api/complaints").Subrouter()
	c.Use(s.requireToken)
	c.HandleFunc("/assigned/", s.list(&s.complaints)).Methods(http.MethodGet)
	c.HandleFunc("/customers/", s.list(&s.customers)).Methods(http.MethodGet)
	c.HandleFunc("/customers/create/", s.handleCreateCustomer).Methods(http.MethodPost)
	c.HandleFunc("/update-status/{reference}/", s.handleUpdateStatus).Methods(http.MethodPost)
	c.HandleFunc("/types/", s.static([]any{
		map[string]any{"id": 1, "name": "Electrical"},
		map[string]any{"id": 2, "name": "Mechanical"},
		map[string]any{"id": 3, "name": "Refrigerant leak"},
	})).Methods(http.MethodGet)
	c.HandleFunc("/priorities/", s.static(map[string]any{"priorities": []any{"Low", "Medium", "High"}})).Methods(http.MethodGet)
	c.HandleFunc("/executives/", s.static(map[string]any{"results": []any{
		map[string]any{"id": 7, "full_name": "Asha Patil"},
		map[string]any{"id": 8, "full_name": "Vikram Rao"},
	}})).Methods(http.MethodGet)

	r.Handle("/complaints/create/", s.requireToken(http.HandlerFunc(s.handleCreateComplaint))).Methods(http.MethodPost)
	r.Handle("/leave/api/leave/apply/", s.requireToken(s.create(&s.leaves, "Leave applied successfully"))).Methods(http.MethodPost)
	r.Handle("/attendance/api/attendance/check-in/", s.requireToken(s.create(&s.attendance, "Checked in"))).Methods(http.MethodPost)
	r.Handle("/attendance/api/attendance/check-out/", s.requireToken(s.create(&s.attendance, "Checked out"))).Methods(http.MethodPost)
	r.Handle("/amc/api/amc/create/", s.requireToken(s.create(&s.amcs, "AMC created successfully"))).Methods(http.MethodPost)

	return r
}

type ctxKey struct{}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Token ")
		s.mu.Lock()
		_, known := s.sessions[token]
		s.mu.Unlock()
		if !ok || !known {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Invalid token."})
			return
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var m map[string]any
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil || m == nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON body"})
		return nil, false
	}
	return m, true
}

func contactOf(m map[string]any) (contact, kind string) {
	if v, ok := m["email"].(string); ok && v != "" {
		return v, "email"
	}
	if v, ok := m["phone_number"].(string); ok && v != "" {
		return v, "phone"
	}
	return "", ""
}

func (s *Server) handleGenerateOTP(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	contact, kind := contactOf(body)
	if contact == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Email or phone number is required"})
		return
	}

	s.mu.Lock()
	s.pending[contact] = true
	s.mu.Unlock()

	s.log.Info(r.Context(), "otp issued", "otp_type", kind)
	writeJSON(w, http.StatusOK, map[string]any{
		"message":            "OTP sent",
		"otp_type":           kind,
		"contact_info":       contact,
		"expires_in_minutes": 5,
	})
}

func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	contact, kind := contactOf(body)
	otp, _ := body["otp"].(string)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pending[contact] || otp != s.otp {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid or expired OTP"})
		return
	}
	delete(s.pending, contact)

	s.nextID++
	user := map[string]any{"id": s.nextID, "name": "Field Technician"}
	if kind == "email" {
		user["email"] = contact
	} else {
		user["phone_number"] = contact
	}
	token, err := shared.RandomHex(20)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Could not issue a token"})
		return
	}
	s.sessions[token] = user

	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user, "message": "Login successful"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token, _ := r.Context().Value(ctxKey{}).(string)
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"message": "Logged out successfully"})
}

func (s *Server) list(items *[]map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		writeJSON(w, http.StatusOK, *items)
	}
}

func (s *Server) static(v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, v)
	}
}

func (s *Server) create(items *[]map[string]any, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := readBody(w, r)
		if !ok {
			return
		}
		s.mu.Lock()
		s.nextID++
		body["id"] = s.nextID
		*items = append(*items, body)
		s.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{"message": message, "id": body["id"]})
	}
}

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	phone, _ := body["phone_number"].(string)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.customers {
		if c["phone_number"] == phone {
			writeJSON(w, http.StatusOK, map[string]any{"success": false, "error": "Customer with this phone number already exists"})
			return
		}
	}

	s.nextID++
	body["id"] = s.nextID
	s.customers = append(s.customers, body)

	if email, _ := body["email"].(string); email != "" {
		// welcome mail is never delivered here; the backend reports it this way
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Customer created successfully but email failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Customer created successfully", "id": body["id"]})
}

func (s *Server) handleCreateComplaint(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	s.nextID++
	ref := "C-" + strconv.Itoa(s.nextID)
	s.complaints = append(s.complaints, map[string]any{
		"id":             s.nextID,
		"complaint_id":   ref,
		"customer_name":  body["customer"],
		"complaint_type": body["complaint_type"],
		"priority":       body["priority"],
		"status":         "open",
		"description":    body["description"],
	})
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "complaint_id": ref})
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["reference"]
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	status, _ := body["status"].(string)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.complaints {
		if c["complaint_id"] == ref {
			c["status"] = status
			writeJSON(w, http.StatusOK, map[string]any{"message": "Status updated successfully"})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"error": "Complaint " + ref + " not found"})
}
