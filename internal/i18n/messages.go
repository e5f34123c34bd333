package i18n

type entry struct {
	key, pt, en, fr string
}

var entries = []entry{
	// navigation
	{"nav.brand", "ShopOnline", "ShopOnline", "ShopOnline"},
	{"nav.products", "Produtos", "Products", "Produits"},
	{"nav.cart", "Carrinho (%d)", "Cart (%d)", "Panier (%d)"},
	{"nav.login", "Entrar", "Sign in", "Connexion"},
	{"nav.register", "Cadastrar", "Sign up", "Inscription"},
	{"nav.logout", "Sair", "Sign out", "Déconnexion"},
	{"nav.admin", "Administração", "Admin", "Administration"},
	{"nav.hello", "Olá, %s", "Hello, %s", "Bonjour, %s"},
	{"nav.guest", "Usuário", "User", "Utilisateur"},

	// accueil
	{"home.title", "Bem-vindo à ShopOnline", "Welcome to ShopOnline", "Bienvenue sur ShopOnline"},
	{"home.subtitle", "Encontre os melhores produtos pelos menores preços!", "Find the best products at the lowest prices!", "Les meilleurs produits aux meilleurs prix !"},
	{"home.search", "Buscar produtos...", "Search products...", "Rechercher des produits..."},
	{"home.empty", "Nenhum produto encontrado", "No products found", "Aucun produit trouvé"},
	{"product.lowStock", "Últimas unidades", "Last units", "Dernières unités"},
	{"product.soldOut", "Esgotado", "Sold out", "Épuisé"},
	{"product.inStock", "%d em estoque", "%d in stock", "%d en stock"},
	{"product.add", "Adicionar ao Carrinho", "Add to cart", "Ajouter au panier"},
	{"product.unavailable", "Indisponível", "Unavailable", "Indisponible"},
	{"error.products.load", "Erro ao carregar produtos. Tente novamente mais tarde.", "Could not load products. Please try again later.", "Impossible de charger les produits. Réessayez plus tard."},

	// panier
	{"cart.title", "Meu Carrinho", "My cart", "Mon panier"},
	{"cart.items", "Itens do Carrinho", "Cart items", "Articles du panier"},
	{"cart.updatedAt", "Última atualização: %s", "Last updated: %s", "Dernière mise à jour : %s"},
	{"cart.empty", "Seu carrinho está vazio", "Your cart is empty", "Votre panier est vide"},
	{"cart.viewProducts", "Ver Produtos", "Browse products", "Voir les produits"},
	{"cart.unit", "%s un.", "%s each", "%s l'unité"},
	{"cart.total", "Total", "Total", "Total"},
	{"cart.checkout", "Finalizar Compra", "Checkout", "Valider la commande"},
	{"cart.checkoutSoon", "Funcionalidade de finalização de compra será implementada em breve!", "Checkout is coming soon!", "La validation de commande arrive bientôt !"},
	{"cart.continue", "Continuar Comprando", "Continue shopping", "Continuer mes achats"},
	{"cart.remove", "Remover item", "Remove item", "Retirer l'article"},
	{"cart.clear", "Esvaziar carrinho", "Empty cart", "Vider le panier"},
	{"cart.loginRequired", "Você precisa estar logado para ver o carrinho", "You must be signed in to see your cart", "Vous devez être connecté pour voir votre panier"},
	{"cart.add.loginRequired", "Por favor, faça login para adicionar itens ao carrinho.", "Please sign in to add items to your cart.", "Connectez-vous pour ajouter des articles au panier."},
	{"cart.add.success", "Produto adicionado ao carrinho com sucesso!", "Product added to your cart!", "Produit ajouté au panier !"},
	{"error.cart.add", "Erro ao adicionar ao carrinho. Tente novamente.", "Could not add to cart. Please try again.", "Impossible d'ajouter au panier. Réessayez."},
	{"error.cart.load", "Erro ao carregar o carrinho. Tente novamente mais tarde.", "Could not load your cart. Please try again later.", "Impossible de charger le panier. Réessayez plus tard."},
	{"error.cart.update", "Erro ao atualizar a quantidade. Tente novamente.", "Could not update the quantity. Please try again.", "Impossible de modifier la quantité. Réessayez."},
	{"error.cart.remove", "Erro ao remover o item. Tente novamente.", "Could not remove the item. Please try again.", "Impossible de retirer l'article. Réessayez."},
	{"error.cart.clear", "Erro ao esvaziar o carrinho. Tente novamente.", "Could not empty the cart. Please try again.", "Impossible de vider le panier. Réessayez."},
	{"error.cart.quantity", "Quantidade inválida", "Invalid quantity", "Quantité invalide"},

	// connexion
	{"login.title", "Entrar na sua conta", "Sign in to your account", "Connexion à votre compte"},
	{"login.email", "Email", "Email", "E-mail"},
	{"login.password", "Senha", "Password", "Mot de passe"},
	{"login.submit", "Entrar", "Sign in", "Se connecter"},
	{"login.noAccount", "Não tem uma conta?", "No account yet?", "Pas encore de compte ?"},
	{"login.registerLink", "Cadastre-se aqui", "Sign up here", "Inscrivez-vous ici"},
	{"error.login.fields", "Preencha todos os campos", "Please fill in all fields", "Veuillez remplir tous les champs"},
	{"error.login.failed", "Erro ao fazer login. Verifique suas credenciais.", "Sign-in failed. Check your credentials.", "Échec de connexion. Vérifiez vos identifiants."},
	{"auth.loginRequired", "Faça login para continuar.", "Please sign in to continue.", "Connectez-vous pour continuer."},
	{"session.expired", "Sua sessão expirou. Faça login novamente.", "Your session has expired. Please sign in again.", "Votre session a expiré. Reconnectez-vous."},

	// inscription
	{"register.title", "Criar conta", "Create account", "Créer un compte"},
	{"register.name", "Nome completo", "Full name", "Nom complet"},
	{"register.age", "Idade", "Age", "Âge"},
	{"register.email", "Email", "Email", "E-mail"},
	{"register.password", "Senha", "Password", "Mot de passe"},
	{"register.confirm", "Confirmar senha", "Confirm password", "Confirmer le mot de passe"},
	{"register.submit", "Criar conta", "Create account", "Créer le compte"},
	{"register.hasAccount", "Já tem uma conta?", "Already have an account?", "Déjà un compte ?"},
	{"register.loginLink", "Faça login aqui", "Sign in here", "Connectez-vous ici"},
	{"register.success", "Cadastro realizado com sucesso! Faça o login para continuar.", "Account created! Please sign in to continue.", "Compte créé ! Connectez-vous pour continuer."},
	{"error.register.fields", "Preencha todos os campos", "Please fill in all fields", "Veuillez remplir tous les champs"},
	{"error.register.age", "Você deve ter pelo menos 18 anos para se cadastrar", "You must be at least 18 to sign up", "Vous devez avoir au moins 18 ans pour vous inscrire"},
	{"error.register.mismatch", "As senhas não coincidem", "Passwords do not match", "Les mots de passe ne correspondent pas"},
	{"error.register.short", "A senha deve ter pelo menos 6 caracteres", "Password must be at least 6 characters", "Le mot de passe doit contenir au moins 6 caractères"},
	{"error.register.email", "Email inválido", "Invalid email", "E-mail invalide"},
	{"error.register.failed", "Erro ao criar conta", "Could not create the account", "Impossible de créer le compte"},

	// administration
	{"admin.title", "Gerenciar Produtos", "Manage products", "Gérer les produits"},
	{"admin.back", "Voltar à loja", "Back to store", "Retour à la boutique"},
	{"admin.new", "Novo Produto", "New product", "Nouveau produit"},
	{"admin.edit", "Editar Produto", "Edit product", "Modifier le produit"},
	{"admin.create", "Adicionar Produto", "Add product", "Ajouter le produit"},
	{"admin.update", "Atualizar Produto", "Update product", "Mettre à jour"},
	{"admin.cancel", "Cancelar", "Cancel", "Annuler"},
	{"admin.name", "Nome do Produto *", "Product name *", "Nom du produit *"},
	{"admin.price", "Preço *", "Price *", "Prix *"},
	{"admin.stock", "Quantidade em Estoque *", "Stock quantity *", "Quantité en stock *"},
	{"admin.image", "URL da Imagem", "Image URL", "URL de l'image"},
	{"admin.description", "Descrição *", "Description *", "Description *"},
	{"admin.list", "Lista de Produtos (%d)", "Products (%d)", "Produits (%d)"},
	{"admin.empty", "Nenhum produto cadastrado", "No products yet", "Aucun produit"},
	{"admin.product", "Produto", "Product", "Produit"},
	{"admin.priceCol", "Preço", "Price", "Prix"},
	{"admin.stockCol", "Estoque", "Stock", "Stock"},
	{"admin.actions", "Ações", "Actions", "Actions"},
	{"admin.units", "%d unidades", "%d units", "%d unités"},
	{"admin.editAction", "Editar", "Edit", "Modifier"},
	{"admin.deleteAction", "Excluir", "Delete", "Supprimer"},
	{"admin.created", "Produto adicionado com sucesso!", "Product added!", "Produit ajouté !"},
	{"admin.updated", "Produto atualizado com sucesso!", "Product updated!", "Produit mis à jour !"},
	{"admin.deleted", "Produto excluído com sucesso!", "Product deleted!", "Produit supprimé !"},
	{"error.admin.fields", "Preencha todos os campos obrigatórios", "Please fill in all required fields", "Veuillez remplir tous les champs obligatoires"},
	{"error.admin.invalid", "Preço, quantidade ou imagem inválidos", "Invalid price, quantity or image", "Prix, quantité ou image invalide"},
	{"error.admin.load", "Erro ao carregar produtos", "Could not load products", "Impossible de charger les produits"},
	{"error.admin.create", "Erro ao adicionar produto", "Could not add the product", "Impossible d'ajouter le produit"},
	{"error.admin.update", "Erro ao atualizar produto", "Could not update the product", "Impossible de modifier le produit"},
	{"error.admin.delete", "Erro ao excluir produto", "Could not delete the product", "Impossible de supprimer le produit"},

	// commun
	{"error.forbidden", "Acesso reservado aos administradores", "Administrators only", "Accès réservé aux administrateurs"},
	{"error.connection", "Erro de conexão. Tente novamente.", "Connection error. Please try again.", "Erreur de connexion. Réessayez."},
	{"error.unexpected", "Ocorreu um erro inesperado.", "An unexpected error occurred.", "Une erreur inattendue est survenue."},
	{"error.rateLimited", "Muitas tentativas. Tente novamente em %d minutos.", "Too many attempts. Try again in %d minutes.", "Trop de tentatives. Réessayez dans %d minutes."},
	{"error.notFound", "Página não encontrada", "Page not found", "Page introuvable"},
}
