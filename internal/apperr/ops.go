package apperr

// Op names a backend operation. Each one owns a localized fallback message.
type Op string

const (
	OpCart           Op = "cart"
	OpAddToCart      Op = "cart.add"
	OpGetCartSummary Op = "cart.summary"
	OpRemoveFromCart Op = "cart.remove"
	OpUpdateCartItem Op = "cart.update"

	OpGetAddresses      Op = "orders.addresses"
	OpRegisterAddress   Op = "orders.register_address"
	OpCheckout          Op = "orders.checkout"
	OpMyOrders          Op = "orders.mine"
	OpAllOrders         Op = "orders.all"
	OpUpdateOrderStatus Op = "orders.update_status"

	OpLogin            Op = "auth.login"
	OpRegister         Op = "auth.register"
	OpLogout           Op = "auth.logout"
	OpMe               Op = "auth.me"
	OpForgotPassword   Op = "auth.forgot_password"
	OpVerifyResetToken Op = "auth.verify_reset_token"
	OpResetPassword    Op = "auth.reset_password"

	OpCreateProduct    Op = "products.create"
	OpGetProducts      Op = "products.list"
	OpGetProduct       Op = "products.get"
	OpCreateVariants   Op = "products.create_variants"
	OpDeleteVariant    Op = "products.delete_variant"
	OpGetVariants      Op = "products.variants"
	OpCreateReview     Op = "reviews.create"
	OpGetReviews       Op = "reviews.list"
	OpGetAverageRating Op = "reviews.average"
	OpDeleteReview     Op = "reviews.delete"

	OpListCategories   Op = "categories.list"
	OpCreateCategory   Op = "categories.create"
	OpUpdateCategory   Op = "categories.update"
	OpDeleteCategory   Op = "categories.delete"
	OpCategoryProducts Op = "categories.products"
	OpAdminGetProduct  Op = "categories.product_get"
	OpUpdateProduct    Op = "categories.product_update"
	OpUpdateVariant    Op = "categories.variant_update"
	OpDeleteProduct    Op = "categories.product_delete"

	OpListUsers  Op = "users.list"
	OpEditUser   Op = "users.edit"
	OpDeleteUser Op = "users.delete"

	OpGetNotifications           Op = "notifications.list"
	OpDeleteNotification         Op = "notifications.delete"
	OpMarkNotificationsRead      Op = "notifications.mark_read"
	OpCreateGlobalNotification   Op = "notifications.create_global"
	OpMarkGlobalNotificationRead Op = "notifications.global_read"

	OpCreateContact       Op = "contact.create"
	OpListContacts        Op = "contact.list"
	OpUpdateContactStatus Op = "contact.update_status"
	OpDeleteContact       Op = "contact.delete"

	OpDashboardStats Op = "dashboard.stats"
)

const genericFallback = "No se pudo completar la operación"

var fallbackMessages = map[Op]string{
	OpCart:           "Error en el carrito",
	OpAddToCart:      "Error al agregar al carrito",
	OpGetCartSummary: "Error al obtener el carrito",
	OpRemoveFromCart: "Error al eliminar producto del carrito",
	OpUpdateCartItem: "Error al actualizar cantidad del producto",

	OpGetAddresses:      "Error al obtener direcciones",
	OpRegisterAddress:   "Error al registrar la dirección",
	OpCheckout:          "Error al procesar la compra",
	OpMyOrders:          "Error al obtener tus pedidos",
	OpAllOrders:         "Error al obtener todos los pedidos",
	OpUpdateOrderStatus: "Error al actualizar el estado del pedido",

	OpLogin:            "Error al iniciar sesión",
	OpRegister:         "Error al registrar usuario",
	OpLogout:           "Error al cerrar sesión",
	OpMe:               "Error al obtener el usuario",
	OpForgotPassword:   "Error al enviar el código",
	OpVerifyResetToken: "Token inválido",
	OpResetPassword:    "Error al restablecer la contraseña",

	OpCreateProduct:    "Error al crear producto",
	OpGetProducts:      "Error al obtener productos",
	OpGetProduct:       "Error al obtener el producto",
	OpCreateVariants:   "Error al crear variantes",
	OpDeleteVariant:    "Error al eliminar variante",
	OpGetVariants:      "Error al obtener variantes",
	OpCreateReview:     "Error al crear la reseña",
	OpGetReviews:       "Error al obtener reseñas",
	OpGetAverageRating: "Error al obtener promedio de reseñas",
	OpDeleteReview:     "Error al eliminar la reseña",

	OpListCategories:   "Error al obtener categorías",
	OpCreateCategory:   "Error al crear categoría",
	OpUpdateCategory:   "Error al actualizar categoría",
	OpDeleteCategory:   "Error al eliminar categoría",
	OpCategoryProducts: "Error al obtener productos de la categoría",
	OpAdminGetProduct:  "No se pudo obtener el producto",
	OpUpdateProduct:    "Error al actualizar producto",
	OpUpdateVariant:    "Error al actualizar variante",
	OpDeleteProduct:    "No se pudo eliminar el producto",

	OpListUsers:  "Error al obtener usuarios",
	OpEditUser:   "Error al actualizar usuario",
	OpDeleteUser: "Error al eliminar usuario",

	OpGetNotifications:           "Error al obtener las notificaciones",
	OpDeleteNotification:         "Error al eliminar la notificación",
	OpMarkNotificationsRead:      "Error al marcar las notificaciones como leídas",
	OpCreateGlobalNotification:   "Error al crear la notificación global",
	OpMarkGlobalNotificationRead: "Error al marcar la notificación global como leída",

	OpCreateContact:       "Error al enviar la solicitud de contacto",
	OpListContacts:        "Error al obtener solicitudes de contacto",
	OpUpdateContactStatus: "Error al actualizar estado de la solicitud",
	OpDeleteContact:       "Error al eliminar la solicitud",

	OpDashboardStats: "Error al cargar datos del dashboard",
}

func FallbackMessage(op Op) string {
	if msg, ok := fallbackMessages[op]; ok {
		return msg
	}
	return genericFallback
}
