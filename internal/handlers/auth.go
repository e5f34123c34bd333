package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"shoponline_web/internal/backend"
	"shoponline_web/internal/i18n"
	"shoponline_web/internal/middleware"
	"shoponline_web/internal/models"
	"shoponline_web/internal/session"
)

// ================== CONNEXION ==================

func (h *Handler) LoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{})
}

// 🔑 POST /login
func (h *Handler) Login(c *gin.Context) {
	t := middleware.TranslatorFrom(c)
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("senha")

	data := gin.H{"Email": email}
	if email == "" || password == "" {
		data["Error"] = t.T("error.login.fields")
		h.render(c, http.StatusBadRequest, "login.html", data)
		return
	}

	res, err := h.api.Authenticate(c.Request.Context(), models.Credentials{Email: email, Password: password})
	if err != nil {
		h.log.Warn("❌ échec connexion", zap.String("email", email), zap.Error(err))
		data["Error"] = loginError(t, err)
		h.render(c, loginFailureStatus(err), "login.html", data)
		return
	}

	auth := session.Auth{Token: res.Token, UserID: res.UserID, UserName: res.Name}
	if claims, ok := session.ReadClaims(res.Token); ok {
		auth.Role = claims.Role
		auth.ExpiresAt = claims.ExpiresAt
		if auth.UserID == "" {
			auth.UserID = claims.UserID
		}
		if auth.UserName == "" {
			auth.UserName = claims.Email
		}
	}
	if auth.UserID == "" {
		h.log.Error("❌ réponse de connexion sans identifiant utilisateur", zap.String("email", email))
		data["Error"] = t.T("error.login.failed")
		h.render(c, http.StatusBadGateway, "login.html", data)
		return
	}
	if auth.UserName == "" {
		auth.UserName = email
	}

	// Nouveau compte, nouveau panier.
	h.carts.Forget(h.sessions.ClearAuth(c.Request))
	h.sessions.SetAuth(c.Request, auth)

	h.log.Info("✅ utilisateur connecté", zap.String("user_id", auth.UserID), zap.String("role", auth.Role))
	h.redirect(c, "/")
}

// loginError privilégie le message renvoyé par le backend.
func loginError(t i18n.Translator, err error) string {
	if backend.KindOf(err) == backend.KindTransport {
		return t.T("error.connection")
	}
	if msg := backend.ServerMessage(err); msg != "" {
		return msg
	}
	return t.T("error.login.failed")
}

// loginFailureStatus : 401 quand le backend refuse les identifiants, ce qui
// est aussi ce que compte le limiteur de connexion.
func loginFailureStatus(err error) int {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound} {
		if backend.IsStatus(err, status) {
			return http.StatusUnauthorized
		}
	}
	return http.StatusBadGateway
}

// 🚪 POST /logout
func (h *Handler) Logout(c *gin.Context) {
	auth := middleware.AuthFrom(c)
	h.carts.Forget(h.sessions.ClearAuth(c.Request))
	h.log.Info("👋 utilisateur déconnecté", zap.String("user_id", auth.UserID))
	h.redirect(c, "/")
}

// ================== INSCRIPTION ==================

// registerForm lit idade comme texte : une valeur illisible ne doit pas
// masquer un champ manquant.
type registerForm struct {
	Name     string `form:"nome" binding:"required"`
	Age      string `form:"idade" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"senha" binding:"required,min=6"`
	Confirm  string `form:"confirmarSenha" binding:"required,eqfield=Password"`
}

// age renvoie l'âge saisi ; ok est faux s'il n'est pas un entier >= 18.
func (f registerForm) age() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(f.Age))
	if err != nil || n < 18 {
		return 0, false
	}
	return n, true
}

func (h *Handler) RegisterPage(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", gin.H{})
}

// 📝 POST /register
func (h *Handler) Register(c *gin.Context) {
	t := middleware.TranslatorFrom(c)

	var form registerForm
	err := c.ShouldBind(&form)
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)

	data := gin.H{"Name": form.Name, "Age": form.Age, "Email": form.Email}
	if key := registerErrorKey(form, err); key != "" {
		data["Error"] = t.T(key)
		h.render(c, http.StatusBadRequest, "register.html", data)
		return
	}
	age, _ := form.age()

	reg := models.Registration{Name: form.Name, Age: age, Email: form.Email, Password: form.Password}
	if err := h.api.CreateUser(c.Request.Context(), reg); err != nil {
		h.log.Warn("❌ échec inscription", zap.String("email", form.Email), zap.Error(err))
		msg := backend.ServerMessage(err)
		if msg == "" {
			msg = t.T("error.register.failed")
		}
		data["Error"] = msg
		h.render(c, failureStatus(err), "register.html", data)
		return
	}

	h.log.Info("✅ compte créé", zap.String("email", form.Email))
	h.sessions.Success(c.Request, t.T("register.success"))
	h.redirect(c, "/login")
}

// registerErrorKey choisit un seul message, dans l'ordre : champs manquants,
// âge, confirmation, longueur du mot de passe, format de l'email. Elle
// renvoie "" si le formulaire est valide.
func registerErrorKey(form registerForm, err error) string {
	failed := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			failed[fe.Field()] = fe.Tag()
		}
	} else if err != nil {
		return "error.register.fields"
	}

	for _, tag := range failed {
		if tag == "required" {
			return "error.register.fields"
		}
	}
	if form.Name == "" || form.Email == "" || strings.TrimSpace(form.Age) == "" {
		return "error.register.fields"
	}

	if _, ok := form.age(); !ok {
		return "error.register.age"
	}
	switch {
	case failed["Confirm"] != "":
		return "error.register.mismatch"
	case failed["Password"] != "":
		return "error.register.short"
	case failed["Email"] != "":
		return "error.register.email"
	}
	return ""
}
