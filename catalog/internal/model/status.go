package model

type LoanStatus string

const (
	StatusMaintenance LoanStatus = "m"
	StatusOnLoan      LoanStatus = "o"
	StatusAvailable   LoanStatus = "a"
	StatusReserved    LoanStatus = "r"
)

var loanStatusNames = map[LoanStatus]string{
	StatusMaintenance: "Maintenance",
	StatusOnLoan:      "On loan",
	StatusAvailable:   "Available",
	StatusReserved:    "Reserved",
}

func (s LoanStatus) IsValid() bool {
	_, ok := loanStatusNames[s]
	return ok
}

func (s LoanStatus) Display() string {
	if name, ok := loanStatusNames[s]; ok {
		return name
	}
	return string(s)
}
