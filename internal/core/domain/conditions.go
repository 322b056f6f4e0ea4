package domain

// Condition is a named boolean attribute an offer may carry, with a fixed
// human-readable description shown on offer cards.
type Condition struct {
	Key         string
	Description string
}

// conditionCatalog is the static, ordered condition set. The slice order
// defines the display order of active conditions everywhere.
var conditionCatalog = []Condition{
	{"cond_no_cashback_giftcard", "Achats via bon d'achat ou carte cadeau non compatibles avec le cashback"},
	{"cond_specific", "Conditions spécifiques"},
	{"cond_has_validation_delay_info", "Délai de validation du cashback"},
	{"cond_has_tracking_delay_info", "Délai d'apparition du cashback en attente"},
	{"cond_cashback_on_nett_amount", "Le cashback est calculé sur le montant hors taxes et autres frais"},
	{"cond_no_cashback_if_cancelled_simple", "Le cashback ne sera pas attribué en cas d'annulation"},
	{"cond_no_cashback_if_subscription_incomplete", "Le cashback ne sera pas attribué en cas de non finalisation de la souscription"},
	{"cond_no_cashback_if_returned_or_cancelled", "Le cashback ne sera pas attribué en cas de retour ou d'annulation"},
	{"cond_cookies_must_be_accepted", "Les cookies doivent être acceptés"},
	{"cond_has_legal_warnings", "Mentions légales et mises en garde"},
	{"cond_new_clients_only", "Nouveaux clients uniquement"},
	{"cond_has_ineligible_products", "Produits non éligibles au cashback"},
	{"cond_joko_codes_only_with_cashback", "Seuls les codes promo fournis par Joko sont garantis d'être cumulables avec le cashback"},
	{"cond_has_cashback_validation_steps", "Étapes à suivre pour la validation du cashback"},
}

var conditionDescriptions = func() map[string]string {
	m := make(map[string]string, len(conditionCatalog))
	for _, c := range conditionCatalog {
		m[c.Key] = c.Description
	}
	return m
}()

// Conditions returns the catalog in display order. Callers must not mutate
// the returned slice.
func Conditions() []Condition {
	return conditionCatalog
}

// ConditionDescription returns the description for a condition key.
func ConditionDescription(key string) (string, bool) {
	desc, ok := conditionDescriptions[key]
	return desc, ok
}

// IsConditionKey reports whether key belongs to the catalog.
func IsConditionKey(key string) bool {
	_, ok := conditionDescriptions[key]
	return ok
}

// NormalizeConditions materializes every catalog key into a complete flag
// set. Keys absent from in default to false (checkbox semantics: unchecked
// boxes are missing from submitted input). Unknown keys are dropped.
func NormalizeConditions(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(conditionCatalog))
	for _, c := range conditionCatalog {
		out[c.Key] = in[c.Key]
	}
	return out
}
