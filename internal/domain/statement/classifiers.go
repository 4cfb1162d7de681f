// Package statement contains the pure classification and normalization logic
// used to turn raw bank/card statement text into normalized transactions.
// Everything here is deterministic and side-effect free: classification is an
// ordered list of patterns evaluated first-match-wins, and anything that fails
// to match falls back to "plain transaction".
package statement

import "regexp"

// maxInstallments is the highest installment count accepted by Brazilian card
// issuers. Matches above it are treated as false positives (usually dates).
const maxInstallments = 48

// carryoverPatterns recognize rolled-over balance lines in card statements:
// the unpaid remainder of a previous bill showing up on the next one.
var carryoverPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)saldo\s+anterior`),
	regexp.MustCompile(`(?i)saldo\s+rotativo`),
	regexp.MustCompile(`(?i)\brotativo\b`),
	regexp.MustCompile(`(?i)financiamento\s+(?:de\s+|da\s+)?fatura`),
	regexp.MustCompile(`(?i)parcelamento\s+(?:de\s+|da\s+)?fatura`),
	regexp.MustCompile(`(?i)pagamento\s+m[ií]nimo`),
	regexp.MustCompile(`(?i)pgto\.?\s+m[ií]nimo`),
	regexp.MustCompile(`(?i)cr[eé]dito\s+rotativo`),
}

// IsCarryoverTransaction reports whether the description looks like the
// carried-over remainder of a previous credit card bill.
func IsCarryoverTransaction(description string) bool {
	for _, p := range carryoverPatterns {
		if p.MatchString(description) {
			return true
		}
	}
	return false
}

// InstallmentInfo is the result of installment detection on a description.
type InstallmentInfo struct {
	IsInstallment bool
	Current       *int
	Total         *int
}

// installmentPatterns are ordered most specific to most generic; the first
// match wins. All capture (current, total).
var installmentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)-\s*parcela\s+(\d{1,2})\s*/\s*(\d{1,2})`),
	regexp.MustCompile(`(?i)parcela\s+(\d{1,2})\s*/\s*(\d{1,2})`),
	regexp.MustCompile(`(?i)\bparc\.?\s*(\d{1,2})\s*(?:/|\s+de\s+)\s*(\d{1,2})\b`),
	regexp.MustCompile(`\b(\d{1,2})\s*/\s*(\d{1,2})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})\s+de\s+(\d{1,2})\b`),
}

// bareInstallmentPattern matches descriptions that end in an installment
// marker without counts; some banks hide the X/Y detail.
var bareInstallmentPattern = regexp.MustCompile(`(?i)\bparcela\s*$`)

// DetectInstallment tries the installment patterns in order and validates the
// captured counts: a match is accepted only when 0 < current <= total and
// total is between 2 and 48. Out-of-range matches (typically bare dates
// picked up by the generic X/Y form) are rejected and the next pattern tried.
func DetectInstallment(description string) InstallmentInfo {
	for _, p := range installmentPatterns {
		m := p.FindStringSubmatch(description)
		if m == nil {
			continue
		}
		current := atoiDigits(m[1])
		total := atoiDigits(m[2])
		if current <= 0 || total <= 1 || total > maxInstallments || current > total {
			continue
		}
		return InstallmentInfo{IsInstallment: true, Current: &current, Total: &total}
	}

	if bareInstallmentPattern.MatchString(description) {
		return InstallmentInfo{IsInstallment: true}
	}

	return InstallmentInfo{}
}

// transferPatterns recognize movements that should never count as income or
// expense: card bill payments, internal transfers, investment movements.
var transferPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)pag(?:amento|to)?\.?\s+(?:de\s+|da\s+)?fatura`),
	regexp.MustCompile(`(?i)pag(?:amento|to)?\.?\s+(?:de\s+|do\s+)?cart[aã]o`),
	regexp.MustCompile(`(?i)fatura\s+(?:de\s+|do\s+)?cart[aã]o`),
	regexp.MustCompile(`(?i)(?:nubank|c6|ita[uú]|btg|bradesco|santander|inter|xp)\s+fatura`),
	regexp.MustCompile(`(?i)transfer[eê]ncia\s+entre\s+contas`),
	regexp.MustCompile(`(?i)\btransf\.?\s+(?:entre\s+)?contas?\b`),
	regexp.MustCompile(`(?i)\baplica[cç][aã]o\b`),
	regexp.MustCompile(`(?i)\bresgate\b`),
	regexp.MustCompile(`(?i)\binvest(?:imento|imentos)?\b`),
}

// DetectTransfer reports whether the description is an internal movement
// (bill payment, account-to-account transfer, or investment application/redemption)
// rather than real income or expense.
func DetectTransfer(description string) bool {
	for _, p := range transferPatterns {
		if p.MatchString(description) {
			return true
		}
	}
	return false
}

// RecurringInfo is the result of recurring-subscription detection.
type RecurringInfo struct {
	IsRecurring bool
	Name        string
}

// recurringService pairs a detection pattern with the canonical display name.
type recurringService struct {
	pattern *regexp.Regexp
	name    string
}

// knownRecurringServices is the fixed table of subscription services detected
// in statement descriptions. First match wins.
var knownRecurringServices = []recurringService{
	// Streaming
	{regexp.MustCompile(`(?i)netflix`), "Netflix"},
	{regexp.MustCompile(`(?i)spotify`), "Spotify"},
	{regexp.MustCompile(`(?i)amazon\s*prime|prime\s*video`), "Amazon Prime"},
	{regexp.MustCompile(`(?i)disney\s*(?:plus|\+)?`), "Disney+"},
	{regexp.MustCompile(`(?i)\bhbo\b|\bmax\.com\b`), "Max"},
	{regexp.MustCompile(`(?i)globoplay`), "Globoplay"},
	{regexp.MustCompile(`(?i)paramount`), "Paramount+"},
	{regexp.MustCompile(`(?i)crunchyroll`), "Crunchyroll"},
	{regexp.MustCompile(`(?i)youtube\s*premium`), "YouTube Premium"},
	{regexp.MustCompile(`(?i)deezer`), "Deezer"},
	{regexp.MustCompile(`(?i)twitch`), "Twitch"},
	// Delivery and transport
	{regexp.MustCompile(`(?i)ifood\s*(?:club|clube)`), "iFood Clube"},
	{regexp.MustCompile(`(?i)uber\s*one`), "Uber One"},
	{regexp.MustCompile(`(?i)rappi\s*(?:prime|pro)`), "Rappi Pro"},
	{regexp.MustCompile(`(?i)\bmelimais\b|meli\s*\+`), "Meli+"},
	// Telecom
	{regexp.MustCompile(`(?i)\bvivo\b`), "Vivo"},
	{regexp.MustCompile(`(?i)\bclaro\b`), "Claro"},
	{regexp.MustCompile(`(?i)\btim\b`), "TIM"},
	{regexp.MustCompile(`(?i)\boi\s+fibra\b`), "Oi Fibra"},
	{regexp.MustCompile(`(?i)\bsky\b`), "Sky"},
	// Cloud and software
	{regexp.MustCompile(`(?i)google\s*(?:one|storage)`), "Google One"},
	{regexp.MustCompile(`(?i)icloud|apple\.com/bill`), "Apple"},
	{regexp.MustCompile(`(?i)dropbox`), "Dropbox"},
	{regexp.MustCompile(`(?i)microsoft\s*365|office\s*365`), "Microsoft 365"},
	{regexp.MustCompile(`(?i)adobe`), "Adobe"},
	{regexp.MustCompile(`(?i)github`), "GitHub"},
	{regexp.MustCompile(`(?i)openai|chatgpt`), "OpenAI"},
	// Gaming
	{regexp.MustCompile(`(?i)playstation\s*(?:plus|network)|psn`), "PlayStation Plus"},
	{regexp.MustCompile(`(?i)xbox\s*(?:game\s*pass)?`), "Xbox Game Pass"},
	{regexp.MustCompile(`(?i)nintendo`), "Nintendo"},
	{regexp.MustCompile(`(?i)\bsteam\b`), "Steam"},
	// Wellness
	{regexp.MustCompile(`(?i)smart\s*fit`), "Smart Fit"},
	{regexp.MustCompile(`(?i)gympass|wellhub`), "Wellhub"},
	{regexp.MustCompile(`(?i)totalpass`), "TotalPass"},
	// Insurance and health
	{regexp.MustCompile(`(?i)porto\s*seguro`), "Porto Seguro"},
	{regexp.MustCompile(`(?i)sulam[eé]rica`), "SulAmérica"},
	{regexp.MustCompile(`(?i)unimed`), "Unimed"},
	{regexp.MustCompile(`(?i)\bamil\b`), "Amil"},
}

// DetectRecurringTransaction matches the description against the table of
// known subscription services and returns the canonical display name of the
// first match.
func DetectRecurringTransaction(description string) RecurringInfo {
	for _, svc := range knownRecurringServices {
		if svc.pattern.MatchString(description) {
			return RecurringInfo{IsRecurring: true, Name: svc.name}
		}
	}
	return RecurringInfo{}
}

// transactionKindPatterns map statement wording to a normalized kind tag.
type transactionKindPattern struct {
	pattern *regexp.Regexp
	kind    string
}

var transactionKindPatterns = []transactionKindPattern{
	{regexp.MustCompile(`(?i)pix\s+receb`), "PIX_RECEBIDO"},
	{regexp.MustCompile(`(?i)pix\s+envi`), "PIX_ENVIADO"},
	{regexp.MustCompile(`(?i)\bpix\b`), "PIX"},
	{regexp.MustCompile(`(?i)\bboleto\b`), "BOLETO"},
	{regexp.MustCompile(`(?i)\bted\b`), "TED"},
	{regexp.MustCompile(`(?i)\bdoc\b`), "DOC"},
	{regexp.MustCompile(`(?i)\bsaque\b`), "SAQUE"},
	{regexp.MustCompile(`(?i)d[eé]bito\s+autom[aá]tico`), "DEBITO_AUTOMATICO"},
}

// DetectTransactionKind returns the normalized kind tag for the description,
// or empty string when no known kind matches.
func DetectTransactionKind(description string) string {
	for _, kp := range transactionKindPatterns {
		if kp.pattern.MatchString(description) {
			return kp.kind
		}
	}
	return ""
}

// atoiDigits converts an all-digit string captured by a regex. Inputs are
// guaranteed numeric by the patterns, so errors cannot occur.
func atoiDigits(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
