package impl

import (
	"strings"

	"safewallet/internal/domain/entity"
)

// Fixed assistant texts.
const (
	WelcomeMessage = "Benvenuto in SafeWallet Sagl. Sono qui per aiutarti a proteggere i tuoi beni. " +
		"Posso localizzare il tuo portafoglio, analizzare zone sicure o fornirti assistenza tecnica."
	FallbackReply = "Spiacente, ho problemi di connessione alla rete SafeWallet in questo momento."
	EmptyReply    = "Non sono riuscito a elaborare la richiesta."
)

const emptyWalletContext = "\n\nL'utente non ha ancora registrato il contenuto del portafoglio."

const personaTemplate = `Sei l'assistente IA ufficiale di 'SafeWallet Sagl', un'azienda svizzera fondata da studenti della Scuola Cantonale di Commercio.

Il tuo tono è professionale, elegante, sicuro e rassicurante.

Caratteristiche del prodotto da enfatizzare:
1. Tecnologia GPS integrata direttamente nel tessuto (non una carta estraibile come i competitor Ekster).
2. Massima sicurezza: non può essere rimosso.
3. Design elegante e moderno.
4. Servizio di manutenzione e sostituzione GPS esclusivo.

Funzioni: Aiuti a localizzare il portafoglio, dai consigli di sicurezza e usi Google Maps per indicare luoghi sicuri o stazioni di polizia se necessario.

IMPORTANTE: Hai accesso ai dati sugli oggetti contenuti nel portafoglio dell'utente. Se l'utente chiede cosa c'è dentro o cosa fare in caso di smarrimento (es. "Ho perso il portafoglio"), usa le informazioni registrate (in particolare i numeri di telefono per il blocco carte) per dare istruzioni precise. {{WALLET_CONTEXT}}

Rispondi sempre in italiano.`

// BuildWalletContext renders the catalogue as the block appended to the persona.
func BuildWalletContext(items []*entity.WalletItem) string {
	if len(items) == 0 {
		return emptyWalletContext
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		var b strings.Builder
		b.WriteString("- ")
		b.WriteString(item.Name)
		b.WriteString(" (")
		b.WriteString(string(item.Type))
		b.WriteString(")")
		if item.Number != "" {
			b.WriteString(", Numero: ")
			b.WriteString(item.Number)
		}
		if item.ExpiryDate != "" {
			b.WriteString(", Scadenza: ")
			b.WriteString(item.ExpiryDate)
		}
		if item.SupportPhone != "" {
			b.WriteString(", Tel. Blocco/Smarrimento: ")
			b.WriteString(item.SupportPhone)
		}
		lines = append(lines, b.String())
	}

	return "\n\nIl contenuto attuale del portafoglio (registrato dall'utente) è:\n" + strings.Join(lines, "\n")
}

// BuildSystemInstruction returns the persona with the wallet context embedded.
func BuildSystemInstruction(items []*entity.WalletItem) string {
	return strings.Replace(personaTemplate, "{{WALLET_CONTEXT}}", BuildWalletContext(items), 1)
}
