package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type fakeProduct struct {
	ID          string  `json:"_id"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
	Stock       int     `json:"quantidade"`
	ImageURL    string  `json:"imagem,omitempty"`
}

type fakeItem struct {
	ProductID string  `json:"produtoId"`
	Name      string  `json:"nome"`
	UnitPrice float64 `json:"precoUnitario"`
	Quantity  int     `json:"quantidade"`
}

type fakeUser struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// fakeBackend imite l'API REST (produits, comptes, panier) en mémoire.
type fakeBackend struct {
	mu        sync.Mutex
	products  []fakeProduct
	users     map[string]fakeUser
	carts     map[string][]fakeItem
	tokens    map[string]string // jeton -> user id
	failCart  bool
	cartReads int
	lastReqID string
	nextID    int

	srv *httptest.Server
}

func newFakeBackend() *fakeBackend {
	f := &fakeBackend{
		products: []fakeProduct{
			{ID: "p1", Name: "Teclado", Description: "Teclado mecânico", Price: 10, Stock: 10},
			{ID: "p2", Name: "Mouse", Description: "Mouse sem fio", Price: 5, Stock: 3},
			{ID: "p3", Name: "Monitor", Description: "Monitor 24 polegadas", Price: 100, Stock: 0},
		},
		users: map[string]fakeUser{
			"ana@example.com":   {ID: "u1", Name: "Ana", Email: "ana@example.com", Password: "secret1", Role: "customer"},
			"admin@example.com": {ID: "u2", Name: "Root", Email: "admin@example.com", Password: "secret2", Role: "admin"},
		},
		carts:  map[string][]fakeItem{},
		tokens: map[string]string{},
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		f.mu.Lock()
		f.lastReqID = c.GetHeader("X-Request-ID")
		f.mu.Unlock()
	})
	api := r.Group("/api")
	api.GET("/produtos", f.listProducts)
	api.POST("/produtos", f.authorized, f.createProduct)
	api.PUT("/produtos", f.authorized, f.updateProduct)
	api.DELETE("/produtos", f.authorized, f.deleteProduct)
	api.POST("/users", f.createUser)
	api.POST("/login", f.login)
	api.GET("/carrinho", f.authorized, f.getCart)
	api.POST("/carrinho", f.authorized, f.failing, f.addToCart)
	api.PUT("/carrinho", f.authorized, f.failing, f.updateCart)
	api.DELETE("/carrinho/item", f.authorized, f.failing, f.removeItem)
	api.DELETE("/carrinho", f.authorized, f.failing, f.clearCart)

	f.srv = httptest.NewServer(r)
	return f
}

func (f *fakeBackend) Close() { f.srv.Close() }

func (f *fakeBackend) setFailCart(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCart = v
}

func (f *fakeBackend) revokeTokens() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = map[string]string{}
}

// putItem modifie le panier côté backend sans passer par la vitrine.
func (f *fakeBackend) putItem(userID string, it fakeItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.carts[userID] = append(f.carts[userID], it)
}

func (f *fakeBackend) reads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cartReads
}

func (f *fakeBackend) requestID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastReqID
}

func (f *fakeBackend) productByName(name string) (fakeProduct, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.Name == name {
			return p, true
		}
	}
	return fakeProduct{}, false
}

func (f *fakeBackend) authorized(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	f.mu.Lock()
	_, ok := f.tokens[token]
	f.mu.Unlock()
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token inválido"})
	}
}

func (f *fakeBackend) failing(c *gin.Context) {
	f.mu.Lock()
	fail := f.failCart
	f.mu.Unlock()
	if fail {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Erro interno"})
	}
}

func (f *fakeBackend) listProducts(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.JSON(http.StatusOK, f.products)
}

func (f *fakeBackend) createProduct(c *gin.Context) {
	var p fakeProduct
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dados inválidos"})
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p.ID = fmt.Sprintf("n%d", f.nextID)
	f.products = append(f.products, p)
	c.JSON(http.StatusCreated, p)
}

func (f *fakeBackend) updateProduct(c *gin.Context) {
	var in struct {
		fakeProduct
		ProductID string `json:"produtoId"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dados inválidos"})
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].ID == in.ProductID {
			in.fakeProduct.ID = in.ProductID
			f.products[i] = in.fakeProduct
			c.JSON(http.StatusOK, f.products[i])
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Produto não encontrado"})
}

func (f *fakeBackend) deleteProduct(c *gin.Context) {
	var in struct {
		ProductID string `json:"produtoId"`
	}
	_ = c.ShouldBindJSON(&in)
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].ID == in.ProductID {
			f.products = append(f.products[:i], f.products[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Produto removido"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Produto não encontrado"})
}

func (f *fakeBackend) createUser(c *gin.Context) {
	var in struct {
		Name     string `json:"nome"`
		Age      int    `json:"idade"`
		Email    string `json:"email"`
		Password string `json:"senha"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dados inválidos"})
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[in.Email]; exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email já cadastrado"})
		return
	}
	f.nextID++
	f.users[in.Email] = fakeUser{ID: fmt.Sprintf("u%d", 100+f.nextID), Name: in.Name, Email: in.Email, Password: in.Password, Role: "customer"}
	c.JSON(http.StatusCreated, gin.H{"message": "Usuário criado"})
}

func (f *fakeBackend) login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"senha"`
	}
	_ = c.ShouldBindJSON(&in)

	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[in.Email]
	if !ok || u.Password != in.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciais inválidas"})
		return
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    u.Role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("backend-secret"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	f.tokens[token] = u.ID
	c.JSON(http.StatusOK, gin.H{"token": token, "_id": u.ID, "nome": u.Name})
}

type cartLineIn struct {
	UserID    string `json:"usuarioId"`
	ProductID string `json:"produtoId"`
	Quantity  int    `json:"quantidade"`
}

func (f *fakeBackend) getCart(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cartReads++
	items, ok := f.carts[c.Query("usuarioId")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Carrinho não encontrado"})
		return
	}
	var total float64
	for _, it := range items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	c.JSON(http.StatusOK, gin.H{
		"_id":             "c-" + c.Query("usuarioId"),
		"itens":           items,
		"total":           total,
		"dataAtualizacao": time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC),
	})
}

func (f *fakeBackend) addToCart(c *gin.Context) {
	var in cartLineIn
	_ = c.ShouldBindJSON(&in)
	f.mu.Lock()
	defer f.mu.Unlock()

	var product *fakeProduct
	for i := range f.products {
		if f.products[i].ID == in.ProductID {
			product = &f.products[i]
		}
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Produto não encontrado"})
		return
	}

	items := f.carts[in.UserID]
	for i := range items {
		if items[i].ProductID == in.ProductID {
			items[i].Quantity += in.Quantity
			f.carts[in.UserID] = items
			c.JSON(http.StatusOK, gin.H{"itens": items})
			return
		}
	}
	f.carts[in.UserID] = append(items, fakeItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  in.Quantity,
	})
	c.JSON(http.StatusOK, gin.H{"itens": f.carts[in.UserID]})
}

func (f *fakeBackend) updateCart(c *gin.Context) {
	var in cartLineIn
	_ = c.ShouldBindJSON(&in)
	f.mu.Lock()
	defer f.mu.Unlock()
	items := f.carts[in.UserID]
	for i := range items {
		if items[i].ProductID == in.ProductID {
			items[i].Quantity = in.Quantity
			c.JSON(http.StatusOK, gin.H{"itens": items})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Item não encontrado"})
}

func (f *fakeBackend) removeItem(c *gin.Context) {
	var in cartLineIn
	_ = c.ShouldBindJSON(&in)
	f.mu.Lock()
	defer f.mu.Unlock()
	items := f.carts[in.UserID]
	kept := items[:0]
	for _, it := range items {
		if it.ProductID != in.ProductID {
			kept = append(kept, it)
		}
	}
	f.carts[in.UserID] = kept
	c.JSON(http.StatusOK, gin.H{"itens": kept})
}

func (f *fakeBackend) clearCart(c *gin.Context) {
	var in cartLineIn
	_ = c.ShouldBindJSON(&in)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.carts[in.UserID] = []fakeItem{}
	c.JSON(http.StatusOK, gin.H{"message": "Carrinho esvaziado"})
}
