// Package grammar enumerates the non-terminal labels and the action
// symbols of the language grammar, per spec §4.D. The enumerations are
// closed: the parser and the code generator only ever see members of
// these sets.
package grammar

// NonTerminal names one production head of the LL(1) grammar.
type NonTerminal int

const (
	Program NonTerminal = iota
	DeclarationList
	Declaration
	DeclarationInitial
	DeclarationPrime
	VarDeclarationPrime
	FunDeclarationPrime
	TypeSpecifier
	Params
	ParamListVoidAbtar
	ParamList
	Param
	ParamPrime
	CompoundStmt
	StatementList
	Statement
	ExpressionStmt
	SelectionStmt
	IterationStmt
	ReturnStmt
	ReturnStmtPrime
	SwitchStmt
	CaseStmts
	CaseStmt
	DefaultStmt
	Expression
	B
	H
	SimpleExpressionZegond
	SimpleExpressionPrime
	C
	Relop
	AdditiveExpression
	AdditiveExpressionPrime
	AdditiveExpressionZegond
	D
	Addop
	Term
	TermPrime
	TermZegond
	G
	SignedFactor
	SignedFactorPrime
	SignedFactorZegond
	Factor
	VarCallPrime
	VarPrime
	FactorPrime
	FactorZegond
	Args
	ArgList
	ArgListPrime
	Epsilon
)

var nonTerminalNames = map[NonTerminal]string{
	Program:                   "Program",
	DeclarationList:           "Declaration-list",
	Declaration:               "Declaration",
	DeclarationInitial:        "Declaration-initial",
	DeclarationPrime:          "Declaration-prime",
	VarDeclarationPrime:       "Var-declaration-prime",
	FunDeclarationPrime:       "Fun-declaration-prime",
	TypeSpecifier:             "Type-specifier",
	Params:                    "Params",
	ParamListVoidAbtar:        "Param-list-void-abtar",
	ParamList:                 "Param-list",
	Param:                     "Param",
	ParamPrime:                "Param-prime",
	CompoundStmt:              "Compound-stmt",
	StatementList:             "Statement-list",
	Statement:                 "Statement",
	ExpressionStmt:            "Expression-stmt",
	SelectionStmt:             "Selection-stmt",
	IterationStmt:             "Iteration-stmt",
	ReturnStmt:                "Return-stmt",
	ReturnStmtPrime:           "Return-stmt-prime",
	SwitchStmt:                "Switch-stmt",
	CaseStmts:                 "Case-stmts",
	CaseStmt:                  "Case-stmt",
	DefaultStmt:               "Default-stmt",
	Expression:                "Expression",
	B:                         "B",
	H:                         "H",
	SimpleExpressionZegond:    "Simple-expression-zegond",
	SimpleExpressionPrime:     "Simple-expression-prime",
	C:                         "C",
	Relop:                     "Relop",
	AdditiveExpression:        "Additive-expression",
	AdditiveExpressionPrime:   "Additive-expression-prime",
	AdditiveExpressionZegond:  "Additive-expression-zegond",
	D:                         "D",
	Addop:                     "Addop",
	Term:                      "Term",
	TermPrime:                 "Term-prime",
	TermZegond:                "Term-zegond",
	G:                         "G",
	SignedFactor:              "Signed-factor",
	SignedFactorPrime:         "Signed-factor-prime",
	SignedFactorZegond:        "Signed-factor-zegond",
	Factor:                    "Factor",
	VarCallPrime:              "Var-call-prime",
	VarPrime:                  "Var-prime",
	FactorPrime:               "Factor-prime",
	FactorZegond:              "Factor-zegond",
	Args:                      "Args",
	ArgList:                   "Arg-list",
	ArgListPrime:              "Arg-list-prime",
	Epsilon:                   "epsilon",
}

func (n NonTerminal) String() string {
	if name, ok := nonTerminalNames[n]; ok {
		return name
	}
	return "?"
}

// Action names one semantic action symbol, embedded at a fixed point
// in a parse procedure's body to drive the code generator.
type Action int

const (
	ProcessID Action = iota
	ProcessNum
	ProcessArray
	Assign
	AssignEmpty
	Save
	Label
	JpfSave
	Jump
	ConditionalJump
	While
	LessThan
	Equals
	Addition
	Multiply
	Print
)

var actionNames = map[Action]string{
	ProcessID:       "PROCESS_ID",
	ProcessNum:      "PROCESS_NUM",
	ProcessArray:    "PROCESS_ARRAY",
	Assign:          "ASSIGN",
	AssignEmpty:     "ASSIGN_EMPTY",
	Save:            "SAVE",
	Label:           "LABEL",
	JpfSave:         "JPF_SAVE",
	Jump:            "JUMP",
	ConditionalJump: "CONDITIONAL_JUMP",
	While:           "WHILE",
	LessThan:        "LESS_THAN",
	Equals:          "EQUALS",
	Addition:        "ADDITION",
	Multiply:        "MULTIPLY",
	Print:           "PRINT",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "?"
}
