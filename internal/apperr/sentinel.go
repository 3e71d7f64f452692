package apperr

var (
	ErrInvalidQuantity    = Validation(OpCart, CodeInvalidQuantity, "La cantidad debe ser mayor o igual a 1")
	ErrInvalidCartItem    = Validation(OpUpdateCartItem, CodeInvalidCartItem, "ID del item inválido")
	ErrMissingVariant     = Validation(OpRemoveFromCart, CodeMissingVariant, "variantId es requerido para eliminar el producto del carrito")
	ErrMissingProduct     = Validation(OpRemoveFromCart, CodeMissingProduct, "productId es requerido para eliminar el producto del carrito")
	ErrAddItemRejected    = BusinessRule(OpAddToCart, CodeAddItemRejected, FallbackMessage(OpAddToCart))
	ErrMissingAddress     = BusinessRule(OpCheckout, CodeMissingAddress, "Debes seleccionar una dirección antes de confirmar la orden")
	ErrCheckoutInProgress = BusinessRule(OpCheckout, CodeCheckoutInProgress, "La orden ya se está procesando")
	ErrOrderCancelled     = BusinessRule(OpUpdateOrderStatus, CodeOrderCancelled, "No se puede cambiar el estado de un pedido cancelado")
	ErrInvalidOrderStatus = Validation(OpUpdateOrderStatus, CodeInvalidOrderStatus, "Estado de pedido no permitido")
	ErrUnauthenticated    = New(KindAuth, CodeUnauthenticated, OpMe, "Debes iniciar sesión")
	ErrForbidden          = New(KindAuth, CodeForbidden, OpMe, "No tienes permisos para esta acción")
	ErrValidation         = Validation("", CodeValidation, "Datos inválidos")
	ErrNetwork            = New(KindNetwork, CodeNetwork, "", genericFallback)
)
