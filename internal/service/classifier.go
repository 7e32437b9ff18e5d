package service

import (
	"fmt"
	"strings"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"
)

// GoalMatch is one classification verdict: this transaction contributes to
// this goal, with the provenance reason that ends up in the ledger's source
// text.
type GoalMatch struct {
	Goal             *model.Goal
	ContributionType model.ContributionType
	Reason           string
}

// goalKeywords maps each goal type to the description substrings that mark a
// transaction as relevant to it.
var goalKeywords = map[model.GoalType][]string{
	model.GoalSavings:       {"saving", "savings", "deposit", "tabungan"},
	model.GoalEmergencyFund: {"emergency", "rainy day", "contingency", "dana darurat"},
	model.GoalRetirement:    {"retirement", "pension", "pensiun"},
	model.GoalInvestment:    {"investment", "invest", "stock", "mutual fund", "crypto", "dividend"},
	model.GoalVacation:      {"vacation", "holiday", "travel", "trip", "flight", "hotel", "tour"},
	model.GoalHouse:         {"house", "home", "mortgage", "down payment", "property"},
	model.GoalEducation:     {"education", "tuition", "school", "course", "training", "consultation"},
	model.GoalDebtPayment:   {"debt", "loan", "repayment", "installment", "credit"},
}

// typeRelevance gates keyword matches: a transaction only counts toward a
// goal when its type makes sense for that goal type.
var typeRelevance = map[model.GoalType][]model.TransactionType{
	model.GoalSavings:       {model.TransactionIncome, model.TransactionSaving, model.TransactionTransfer},
	model.GoalEmergencyFund: {model.TransactionIncome, model.TransactionSaving, model.TransactionTransfer},
	model.GoalRetirement:    {model.TransactionIncome, model.TransactionSaving, model.TransactionTransfer},
	model.GoalInvestment:    {model.TransactionIncome, model.TransactionSaving, model.TransactionTransfer},
	model.GoalVacation:      {model.TransactionExpense, model.TransactionSaving},
	model.GoalHouse:         {model.TransactionIncome, model.TransactionSaving, model.TransactionExpense},
	model.GoalEducation:     {model.TransactionExpense, model.TransactionSaving},
	model.GoalDebtPayment:   {model.TransactionRepayment, model.TransactionDebt, model.TransactionTransfer, model.TransactionExpense},
}

// linkedRelevance is the slightly broader gate applied to linked-account and
// linked-debt matches: an explicit link means transfers always count.
var linkedRelevance = map[model.GoalType][]model.TransactionType{
	model.GoalSavings:       {model.TransactionIncome, model.TransactionSaving, model.TransactionTransfer},
	model.GoalEmergencyFund: {model.TransactionIncome, model.TransactionSaving, model.TransactionTransfer},
	model.GoalRetirement:    {model.TransactionIncome, model.TransactionSaving, model.TransactionTransfer},
	model.GoalInvestment:    {model.TransactionIncome, model.TransactionSaving, model.TransactionTransfer},
	model.GoalVacation:      {model.TransactionExpense, model.TransactionSaving, model.TransactionTransfer},
	model.GoalHouse:         {model.TransactionIncome, model.TransactionSaving, model.TransactionExpense, model.TransactionTransfer},
	model.GoalEducation:     {model.TransactionExpense, model.TransactionSaving, model.TransactionTransfer},
	model.GoalDebtPayment:   {model.TransactionRepayment, model.TransactionDebt, model.TransactionTransfer, model.TransactionExpense},
}

// TransactionClassifier decides which goals a transaction contributes to.
// It is a pure function over the supplied goal list; the tables are fields so
// tests can substitute smaller ones.
type TransactionClassifier struct {
	Keywords        map[model.GoalType][]string
	TypeRelevance   map[model.GoalType][]model.TransactionType
	LinkedRelevance map[model.GoalType][]model.TransactionType
}

func NewTransactionClassifier() *TransactionClassifier {
	return &TransactionClassifier{
		Keywords:        goalKeywords,
		TypeRelevance:   typeRelevance,
		LinkedRelevance: linkedRelevance,
	}
}

// Classify evaluates one transaction against the candidate goals. For each
// goal the first qualifying rule wins the provenance label: linked account,
// then linked debt, then keywords. The type-relevance gate always applies.
func (c *TransactionClassifier) Classify(tx *model.Transaction, goals []model.Goal) []GoalMatch {
	if tx == nil || !tx.Amount.IsPositive() {
		return nil
	}

	description := strings.ToLower(tx.Description)

	var matches []GoalMatch
	for i := range goals {
		goal := &goals[i]

		if goal.LinkedAccountID != nil && *goal.LinkedAccountID == tx.AccountID {
			if c.relevantForLinked(goal.Type, tx.Type) {
				contributionType := model.ContributionTransaction
				if goal.Type == model.GoalDebtPayment {
					contributionType = model.ContributionDebtPayment
				}
				matches = append(matches, GoalMatch{
					Goal:             goal,
					ContributionType: contributionType,
					Reason:           fmt.Sprintf("Account: %d", *goal.LinkedAccountID),
				})
			}
			continue
		}

		if goal.Type == model.GoalDebtPayment && goal.LinkedDebtID != nil &&
			tx.DebtID != nil && *goal.LinkedDebtID == *tx.DebtID {
			if c.relevantForLinked(goal.Type, tx.Type) {
				matches = append(matches, GoalMatch{
					Goal:             goal,
					ContributionType: model.ContributionDebtPayment,
					Reason:           fmt.Sprintf("Debt: %d", *goal.LinkedDebtID),
				})
			}
			continue
		}

		matched := matchKeywords(description, c.Keywords[goal.Type])
		if len(matched) == 0 {
			continue
		}
		if !c.relevantForKeyword(goal.Type, tx.Type) {
			continue
		}

		matches = append(matches, GoalMatch{
			Goal:             goal,
			ContributionType: model.ContributionAutoCategorized,
			Reason:           "Keywords: " + strings.Join(matched, ", "),
		})
	}

	return matches
}

func (c *TransactionClassifier) relevantForKeyword(goalType model.GoalType, txType model.TransactionType) bool {
	return containsType(c.TypeRelevance[goalType], txType)
}

func (c *TransactionClassifier) relevantForLinked(goalType model.GoalType, txType model.TransactionType) bool {
	return containsType(c.LinkedRelevance[goalType], txType)
}

func matchKeywords(description string, keywords []string) []string {
	var matched []string
	for _, keyword := range keywords {
		if strings.Contains(description, keyword) {
			matched = append(matched, keyword)
		}
	}
	return matched
}

func containsType(types []model.TransactionType, t model.TransactionType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
