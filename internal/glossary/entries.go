package glossary

// builtin is the economics vocabulary annotated in every digest.
var builtin = []Entry{
	{"Euler Equation", "Describes optimal consumption smoothing over time: u'(c_t) = β(1+r)u'(c_{t+1})", "https://en.wikipedia.org/wiki/Euler_equations_(fluid_dynamics)#Euler_equation_in_economics"},
	{"Keynesian Multiplier", "Shows how initial spending creates ripple effects: Multiplier = 1/(1-MPC)", "https://en.wikipedia.org/wiki/Fiscal_multiplier"},
	{"Cobb-Douglas", "Production function: Y = AK^α L^(1-α), showing how capital and labor combine", "https://en.wikipedia.org/wiki/Cobb%E2%80%93Douglas_production_function"},
	{"CAPM", "Capital Asset Pricing Model: E(R) = Rf + β(Rm - Rf)", "https://en.wikipedia.org/wiki/Capital_asset_pricing_model"},
	{"Comparative Advantage", "Countries benefit from trade by specializing in what they produce most efficiently", "https://en.wikipedia.org/wiki/Comparative_advantage"},
	{"Taylor Rule", "How central banks set interest rates based on inflation and output gaps", "https://en.wikipedia.org/wiki/Taylor_rule"},
	{"Deadweight Loss", "Economic inefficiency from taxes or monopolies: the value destroyed", "https://en.wikipedia.org/wiki/Deadweight_loss"},
	{"Nash Equilibrium", "Game theory: when no player benefits from changing strategy unilaterally", "https://en.wikipedia.org/wiki/Nash_equilibrium"},
	{"Production Possibilities Frontier", "The maximum output combinations an economy can produce efficiently", "https://en.wikipedia.org/wiki/Production%E2%80%93possibility_frontier"},
	{"Schumpeterian Innovation", "Creative destruction: new innovations replace old industries", "https://en.wikipedia.org/wiki/Creative_destruction"},
	{"Creative Destruction", "Schumpeter's theory that innovation destroys old industries to create new ones", "https://en.wikipedia.org/wiki/Creative_destruction"},
	{"Tax Incidence", "Who actually bears the burden of a tax (not always who pays it)", "https://en.wikipedia.org/wiki/Tax_incidence"},
	{"Markup Pricing", "Firms with market power charge prices above marginal cost: μ = P/MC", "https://en.wikipedia.org/wiki/Markup_(business)"},
	{"Permanent Income Hypothesis", "Consumption based on expected lifetime income, not current income", "https://en.wikipedia.org/wiki/Permanent_income_hypothesis"},
	{"Asset Pricing", "Valuing financial assets based on expected future cash flows", "https://en.wikipedia.org/wiki/Asset_pricing"},
	{"Equity Valuation", "Determining stock value: V = Σ(dividends)/(1+r)^t", "https://en.wikipedia.org/wiki/Stock_valuation"},
	{"Fiscal Multipliers", "How government spending amplifies through the economy", "https://en.wikipedia.org/wiki/Fiscal_multiplier"},
	{"Regional Fiscal Multipliers", "Local economic impact of spending changes in a region", "https://en.wikipedia.org/wiki/Fiscal_multiplier"},
	{"Game Theory", "Mathematical study of strategic decision-making", "https://en.wikipedia.org/wiki/Game_theory"},
	{"Deterrence Games", "Strategic interactions where threats prevent unwanted actions", "https://en.wikipedia.org/wiki/Deterrence_theory"},
	{"Rational Expectations", "Agents use all available information to form expectations", "https://en.wikipedia.org/wiki/Rational_expectations"},
	{"Consumer Demand Theory", "How consumers allocate budgets to maximize utility", "https://en.wikipedia.org/wiki/Consumer_choice"},
	{"MPC", "Marginal Propensity to Consume: how much of extra income is spent", "https://en.wikipedia.org/wiki/Marginal_propensity_to_consume"},
	{"Black-Scholes", "Option pricing formula: C = SN(d1) - Ke^(-rT)N(d2)", "https://en.wikipedia.org/wiki/Black%E2%80%93Scholes_model"},
	{"HHI", "Herfindahl-Hirschman Index: measures market concentration", "https://en.wikipedia.org/wiki/Herfindahl%E2%80%93Hirschman_index"},
	{"Beveridge Curve", "Relationship between unemployment and job vacancies", "https://en.wikipedia.org/wiki/Beveridge_curve"},
}
