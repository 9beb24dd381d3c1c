package utils

import (
	"fmt"
	"log"

	"velora_back_end/internal/models"
)

// SendOrderStatusEmail notifie l'utilisateur d'un changement de statut de commande.
func SendOrderStatusEmail(order models.Order, userEmail, newStatus string) error {
	subject := getStatusEmailSubject(newStatus)
	html := generateStatusEmailHTML(order, newStatus)

	if err := SendEmail(userEmail, subject, html); err != nil {
		log.Printf("❌ Erreur envoi email statut: %v", err)
		return err
	}

	log.Printf("📧 Email de statut envoyé: %s → %s", newStatus, userEmail)
	return nil
}

func getStatusEmailSubject(status string) string {
	switch status {
	case "Processing":
		return "Votre commande est en préparation"
	case "Dispatched":
		return "Votre commande a été expédiée"
	case "Delivered":
		return "Votre commande a été livrée"
	case "Cancelled":
		return "Votre commande a été annulée"
	default:
		return "Mise à jour de votre commande"
	}
}

func generateStatusEmailHTML(order models.Order, status string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Mise à jour de votre commande</h2>
		<p>Bonjour,</p>
		<p>Le statut de votre commande <strong>%s</strong> est maintenant : <strong>%s</strong>.</p>
		<p>Montant : %s %s</p>
	</div>
</body>
</html>`, order.ID.Hex(), status, order.PaymentIntent.Amount, order.PaymentIntent.Currency)
}
