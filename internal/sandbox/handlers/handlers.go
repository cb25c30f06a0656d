// Package handlers exposes the sandbox store over the same REST contract
// as the production CalamaUnido API.
package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/calamaunido/internal/client/models"
	"github.com/dmitrijs2005/calamaunido/internal/logging"
	"github.com/dmitrijs2005/calamaunido/internal/rut"
	"github.com/dmitrijs2005/calamaunido/internal/sandbox/auth"
	"github.com/dmitrijs2005/calamaunido/internal/sandbox/store"
	"github.com/gin-gonic/gin"
)

// Routes.
const (
	EndPointHealth        = "/health"
	EndPointToken         = "/api/v1/token/"
	EndPointTokenRefresh  = "/api/v1/token/refresh/"
	EndPointCategories    = "/api/v1/categorias/"
	EndPointPublications  = "/api/v1/publicaciones/"
	EndPointMedia         = "/media/*archivo"
	detailBadCredentials  = "No se encontró una cuenta activa con las credenciales entregadas."
	detailPageNotFound    = "Página inválida."
	errorMalformedRequest = "Se requieren los campos rut y password."
)

// Options configure a Handler.
type Options struct {
	SecretKey       []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	PageSize        int
	PublicURL       string
}

// Handler serves the API endpoints.
type Handler struct {
	store store.Store
	opts  Options
	log   logging.Logger
}

func NewHandler(s store.Store, opts Options, log logging.Logger) *Handler {
	if opts.PageSize < 1 {
		opts.PageSize = 10
	}
	opts.PublicURL = strings.TrimRight(opts.PublicURL, "/")
	return &Handler{store: s, opts: opts, log: log}
}

// NewRouter wires every route and the middleware chain onto a fresh gin
// engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(h.log))

	r.GET(EndPointHealth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "calamaunido-sandbox"})
	})
	r.POST(EndPointToken, h.ObtainToken)
	r.POST(EndPointTokenRefresh, h.RefreshToken)
	r.GET(EndPointMedia, h.Media)

	api := r.Group("/")
	api.Use(Auth(h.opts.SecretKey, h.log))
	{
		api.GET(EndPointCategories, h.Categories)
		api.GET(EndPointPublications, h.Publications)
	}
	return r
}

type tokenRequest struct {
	Rut      string `json:"rut" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ObtainToken exchanges credentials for an access/refresh pair. A body
// without rut or password is 400 {"error"}; wrong credentials are
// 401 {"detail"}.
func (h *Handler) ObtainToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorMalformedRequest})
		return
	}

	ctx := c.Request.Context()

	u, err := h.store.Authenticate(ctx, req.Rut, req.Password)
	if err != nil {
		h.log.Info(ctx, "login rejected", "rut", rut.Unformat(req.Rut))
		c.JSON(http.StatusUnauthorized, gin.H{"detail": detailBadCredentials})
		return
	}

	pair, err := auth.GeneratePair(u.RUT, h.opts.SecretKey, h.opts.AccessTokenTTL, h.opts.RefreshTokenTTL)
	if err != nil {
		h.log.Error(ctx, "sign tokens", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Access: pair.Access, Refresh: pair.Refresh})
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// RefreshToken issues a new access token for a valid refresh token.
func (h *Handler) RefreshToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere el campo refresh."})
		return
	}

	ctx := c.Request.Context()

	rutValue, err := auth.GetRUTFromToken(req.Refresh, h.opts.SecretKey, auth.KindRefresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "El token no es válido o ha expirado."})
		return
	}
	if _, ok := h.store.LookupUser(ctx, rutValue); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": detailBadCredentials})
		return
	}

	access, err := auth.GenerateToken(rutValue, auth.KindAccess, h.opts.SecretKey, h.opts.AccessTokenTTL)
	if err != nil {
		h.log.Error(ctx, "sign access token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, models.TokenResponse{Access: access})
}

func (h *Handler) Categories(c *gin.Context) {
	cats, err := h.store.Categories(c.Request.Context())
	if err != nil {
		h.log.Error(c.Request.Context(), "list categories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	c.JSON(http.StatusOK, cats)
}

// Publications serves one page. page defaults to 1; categoria is a comma
// separated list of category names.
func (h *Handler) Publications(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusNotFound, gin.H{"detail": detailPageNotFound})
			return
		}
		page = n
	}

	categoria := c.Query("categoria")
	var names []string
	if categoria != "" {
		names = strings.Split(categoria, ",")
	}

	ctx := c.Request.Context()

	res, err := h.store.Publications(ctx, store.Query{Page: page, PageSize: h.opts.PageSize, Categories: names})
	if errors.Is(err, store.ErrPageNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": detailPageNotFound})
		return
	}
	if err != nil {
		h.log.Error(ctx, "list publications", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}

	out := models.Page{Count: res.Count, Results: res.Items}
	if res.HasNext {
		out.Next = h.pageLink(page+1, categoria)
	}
	if res.HasPrev {
		out.Previous = h.pageLink(page-1, categoria)
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) pageLink(page int, categoria string) *string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if categoria != "" {
		q.Set("categoria", categoria)
	}
	link := h.opts.PublicURL + EndPointPublications + "?" + q.Encode()
	return &link
}
