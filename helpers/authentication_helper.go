package helpers

// AdminPaymentRefundRole lets an admin user refund payments from the admin UI
const AdminPaymentRefundRole = "/admin/payment-refund"
