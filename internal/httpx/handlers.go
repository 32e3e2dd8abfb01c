package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"

	"github.com/ayurlanka/admin-api/internal/catalog"
	"github.com/ayurlanka/admin-api/internal/classify"
	kafkax "github.com/ayurlanka/admin-api/internal/kafka"
	"github.com/ayurlanka/admin-api/internal/store"
)

type Handler struct {
	Products      *catalog.Products
	Practitioners *catalog.Practitioners
	Orders        *catalog.Orders
	Suppliers     *catalog.Suppliers
	Classifier    *classify.Service
	Producer      *kafkax.Producer // nil kalau broker tidak dikonfigurasi
	Store         store.Store      // dipakai /stats
	Service       string
}

func (h *Handler) Register(r *chi.Mux) {
	r.Post("/add-product", h.addProduct)
	r.Get("/products", h.listProducts)
	r.Delete("/delete-product/{id}", h.deleteProduct)

	r.Post("/add-practitioner", h.addPractitioner)
	r.Get("/practitioners", h.listPractitioners)
	r.Delete("/delete-practitioner/{id}", h.deletePractitioner)

	r.Post("/add-order", h.addOrder)
	r.Get("/orders", h.listOrders)

	r.Post("/submit-supplier", h.submitSupplier)
	r.Get("/suppliers", h.listSuppliers)

	r.Post("/submit-form", h.submitForm)
	r.Post("/predict", h.predict)

	r.Get("/stats", h.stats)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Error path selalu pakai status code eksplisit + body {"message": ...}:
// 400 input, 404 business id tidak ada, 500 store.
func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"message": msg})
}

// --- products ---

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if p.Name == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	key, id, err := h.Products.Create(ctx, &p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error adding product: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "product added", "key": key, "id": id})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ps, err := h.Products.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error getting products: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	switch err := h.Products.DeleteByID(ctx, id); {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "product not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "error deleting product: "+err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
	}
}

// --- practitioners ---

func (h *Handler) addPractitioner(w http.ResponseWriter, r *http.Request) {
	var p catalog.Practitioner
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if p.Name == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	key, id, err := h.Practitioners.Create(ctx, &p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error adding practitioner: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "practitioner added", "key": key, "id": id})
}

func (h *Handler) listPractitioners(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ps, err := h.Practitioners.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error getting practitioners: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *Handler) deletePractitioner(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	switch err := h.Practitioners.DeleteByID(ctx, id); {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "practitioner not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "error deleting practitioner: "+err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "practitioner deleted"})
	}
}

// --- orders ---

func (h *Handler) addOrder(w http.ResponseWriter, r *http.Request) {
	var ord catalog.Order
	if err := json.NewDecoder(r.Body).Decode(&ord); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if ord.CustomerName == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	key, err := h.Orders.Create(ctx, &ord)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error placing order: "+err.Error())
		return
	}

	// publish event fire-and-forget; gagal publish tidak menggagalkan request
	if h.Producer != nil {
		ev := catalog.Envelope{
			EventID:      uuid.NewString(),
			EventType:    catalog.EventOrderCreated,
			EventVersion: 1,
			OccurredAt:   time.Now().UTC(),
			Producer:     h.Service,
			TraceID:      r.Header.Get("X-Request-Id"),
			Payload: kafkax.MustMarshal(catalog.OrderCreatedPayload{
				OrderID:      ord.OrderID,
				CustomerName: ord.CustomerName,
				ItemCount:    len(ord.OrderSummary),
				StorageKey:   key,
			}),
		}
		h.Producer.Publish(catalog.PartitionKey(ord.OrderID), kafkax.MustMarshal(ev),
			kafkago.Header{Key: "x-event-type", Value: []byte(catalog.EventOrderCreated)},
			kafkago.Header{Key: "x-event-version", Value: []byte("1")},
		)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "order placed", "key": key, "order_id": ord.OrderID,
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	list, err := h.Orders.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error fetching orders: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// --- suppliers & forms ---

func (h *Handler) submitSupplier(w http.ResponseWriter, r *http.Request) {
	var f catalog.SupplierForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if f.Name == "" || f.Telephone == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	key, err := h.Suppliers.Submit(ctx, &f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error saving supplier: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "supplier info received", "database_key": key,
	})
}

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	fs, err := h.Suppliers.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error retrieving suppliers: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fs)
}

// submitForm: sink log-only, tidak menyentuh store.
func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	var f catalog.UserForm
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if f.Name == "" || f.Email == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}
	log.Printf("form from %s <%s>: %s", f.Name, f.Email, f.Message)
	writeJSON(w, http.StatusOK, map[string]string{"message": "form received"})
}

// --- classification ---

type feedbackReq struct {
	Feedback string `json:"feedback"`
}

func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	// string kosong valid: model tetap menghasilkan label
	writeJSON(w, http.StatusOK, map[string]string{"result": h.Classifier.Predict(req.Feedback)})
}

// --- stats ---

// stats menghitung jumlah dokumen per koleksi, dibaca paralel.
func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	paths := []string{store.PathProducts, store.PathPractitioners, store.PathOrders, store.PathSuppliers}
	counts := make([]int, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			snap, err := h.Store.ReadAll(gctx, p)
			if err != nil {
				return err
			}
			counts[i] = len(snap)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		writeError(w, http.StatusInternalServerError, "error reading collections: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"products":      counts[0],
		"practitioners": counts[1],
		"orders":        counts[2],
		"suppliers":     counts[3],
	})
}
