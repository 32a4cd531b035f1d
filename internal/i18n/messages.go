package i18n

var messages = map[string]map[string]string{
	LocaleFR: {
		"success.product_added":               "Produit ajouté au panier",
		"success.special_meal_added":          "Plat personnalisé ajouté au panier",
		"success.cart_updated":                "Panier mis à jour",
		"success.cart_line_removed":           "Article retiré du panier",
		"success.order_placed":                "Commande enregistrée",
		"success.feedback_submitted":          "Merci pour votre avis",
		"error.bad_request":                   "Requête invalide",
		"error.not_found":                     "Ressource introuvable",
		"error.too_many_requests":             "Trop de requêtes, réessayez plus tard",
		"error.rate_limited":                  "Trop de requêtes, réessayez dans %d secondes",
		"error.internal":                      "Erreur interne",
		"error.session_required":              "Session manquante",
		"error.invalid_quantity":              "La quantité doit être au moins 1",
		"error.invalid_line_type":             "Type d'article invalide",
		"error.invalid_selection":             "Sélection d'ingrédients invalide",
		"error.ingredient_limit":              "Quantité d'ingrédient trop élevée",
		"error.ingredient_not_allowed":        "Ingrédient non proposé pour ce plat",
		"error.product_not_available":         "Produit indisponible",
		"error.special_meal_unavailable":      "Plat indisponible",
		"error.ingredient_unavailable":        "Ingrédient indisponible",
		"error.cart_line_not_found":           "Article introuvable dans le panier",
		"error.cart_empty":                    "Votre panier est vide",
		"error.phone_required":                "Le numéro de téléphone est obligatoire",
		"error.cart_update_failed":            "Impossible de mettre à jour le panier",
		"error.cart_fetch_failed":             "Impossible de charger le panier",
		"error.order_create_failed":           "Impossible d'enregistrer la commande",
		"error.order_not_found":               "Commande introuvable",
		"error.order_fetch_failed":            "Impossible de charger les commandes",
		"error.order_status_invalid":          "Statut de commande invalide",
		"error.order_update_failed":           "Impossible de modifier la commande",
		"error.menu_fetch_failed":             "Impossible de charger le menu",
		"error.feedback_invalid":              "Nom et message sont obligatoires",
		"error.feedback_email_invalid":        "Adresse e-mail invalide",
		"error.feedback_rating_invalid":       "La note doit être comprise entre 1 et 5",
		"error.feedback_create_failed":        "Impossible d'enregistrer votre avis",
		"error.feedback_fetch_failed":         "Impossible de charger les avis",
		"error.catalog_name_required":         "Le nom est obligatoire",
		"error.catalog_price_invalid":         "Le prix doit être positif",
		"error.max_quantity_invalid":          "La quantité maximale doit être au moins 1",
		"error.category_not_found":            "Catégorie introuvable",
		"error.category_in_use":               "La catégorie contient encore des produits",
		"error.product_not_found":             "Produit introuvable",
		"error.ingredient_not_found":          "Ingrédient introuvable",
		"error.ingredient_category_not_found": "Catégorie d'ingrédients introuvable",
		"error.special_meal_not_found":        "Plat introuvable",
		"error.catalog_save_failed":           "Impossible d'enregistrer le catalogue",
	},
	LocaleEN: {
		"success.product_added":               "Product added to cart",
		"success.special_meal_added":          "Customized meal added to cart",
		"success.cart_updated":                "Cart updated",
		"success.cart_line_removed":           "Item removed from cart",
		"success.order_placed":                "Order placed",
		"success.feedback_submitted":          "Thank you for your feedback",
		"error.bad_request":                   "Bad request",
		"error.not_found":                     "Not found",
		"error.too_many_requests":             "Too many requests, please retry later",
		"error.rate_limited":                  "Too many requests, retry in %d seconds",
		"error.internal":                      "Internal error",
		"error.session_required":              "Missing session",
		"error.invalid_quantity":              "Quantity must be at least 1",
		"error.invalid_line_type":             "Invalid item type",
		"error.invalid_selection":             "Invalid ingredient selection",
		"error.ingredient_limit":              "Ingredient quantity too high",
		"error.ingredient_not_allowed":        "Ingredient not offered for this meal",
		"error.product_not_available":         "Product not available",
		"error.special_meal_unavailable":      "Meal not available",
		"error.ingredient_unavailable":        "Ingredient not available",
		"error.cart_line_not_found":           "Cart item not found",
		"error.cart_empty":                    "Your cart is empty",
		"error.phone_required":                "Phone number is required",
		"error.cart_update_failed":            "Failed to update cart",
		"error.cart_fetch_failed":             "Failed to load cart",
		"error.order_create_failed":           "Failed to place order",
		"error.order_not_found":               "Order not found",
		"error.order_fetch_failed":            "Failed to load orders",
		"error.order_status_invalid":          "Invalid order status",
		"error.order_update_failed":           "Failed to update order",
		"error.menu_fetch_failed":             "Failed to load menu",
		"error.feedback_invalid":              "Name and message are required",
		"error.feedback_email_invalid":        "Invalid email address",
		"error.feedback_rating_invalid":       "Rating must be between 1 and 5",
		"error.feedback_create_failed":        "Failed to save feedback",
		"error.feedback_fetch_failed":         "Failed to load feedback",
		"error.catalog_name_required":         "Name is required",
		"error.catalog_price_invalid":         "Price must not be negative",
		"error.max_quantity_invalid":          "Max quantity must be at least 1",
		"error.category_not_found":            "Category not found",
		"error.category_in_use":               "Category still has products",
		"error.product_not_found":             "Product not found",
		"error.ingredient_not_found":          "Ingredient not found",
		"error.ingredient_category_not_found": "Ingredient category not found",
		"error.special_meal_not_found":        "Meal not found",
		"error.catalog_save_failed":           "Failed to save catalog",
	},
}
