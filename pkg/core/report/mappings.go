package report

import (
	"github.com/matthelmer/edinet-tools/pkg/core/extract"
)

// Mapping tables are data. Each table binds canonical XBRL elements to
// the output fields of one report type; processors coalesce the
// summary -> financial-statement -> IFRS tiers at assembly time.
// Tables are package-level and never mutated after init; overrides.go
// can produce adjusted copies from YAML.

// securitiesTable covers annual securities reports (doc 120). Summary
// elements (jpcrp_cor *SummaryOfBusinessResults) are preferred, the
// financial-statement elements (jppfs_cor) are the fallback, and each
// statement element names its jpigp_cor IFRS twin.
var securitiesTable = []extract.FieldMapping{
	// Income statement, current year.
	{Field: "net_sales_summary", ElementID: "jpcrp_cor:NetSalesSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "net_sales_fs", ElementID: "jppfs_cor:NetSales", IFRSElementID: "jpigp_cor:RevenueIFRS", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "operating_income_fs", ElementID: "jppfs_cor:OperatingIncome", IFRSElementID: "jpigp_cor:OperatingProfitLossIFRS", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "ordinary_income_summary", ElementID: "jpcrp_cor:OrdinaryIncomeLossSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "ordinary_income_fs", ElementID: "jppfs_cor:OrdinaryIncome", IFRSElementID: "jpigp_cor:ProfitLossBeforeTaxIFRS", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "net_income_summary", ElementID: "jpcrp_cor:ProfitLossAttributableToOwnersOfParentSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "net_income_fs", ElementID: "jppfs_cor:ProfitLoss", IFRSElementID: "jpigp_cor:ProfitLossIFRS", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},

	// Income statement, prior year comparatives.
	{Field: "prior_net_sales_summary", ElementID: "jpcrp_cor:NetSalesSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "Prior1YearDuration", Kind: extract.Int},
	{Field: "prior_net_sales_fs", ElementID: "jppfs_cor:NetSales", IFRSElementID: "jpigp_cor:RevenueIFRS", Rule: extract.PeriodQualified, Period: "Prior1YearDuration", Kind: extract.Int},
	{Field: "prior_operating_income_fs", ElementID: "jppfs_cor:OperatingIncome", IFRSElementID: "jpigp_cor:OperatingProfitLossIFRS", Rule: extract.PeriodQualified, Period: "Prior1YearDuration", Kind: extract.Int},
	{Field: "prior_ordinary_income_summary", ElementID: "jpcrp_cor:OrdinaryIncomeLossSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "Prior1YearDuration", Kind: extract.Int},
	{Field: "prior_ordinary_income_fs", ElementID: "jppfs_cor:OrdinaryIncome", IFRSElementID: "jpigp_cor:ProfitLossBeforeTaxIFRS", Rule: extract.PeriodQualified, Period: "Prior1YearDuration", Kind: extract.Int},
	{Field: "prior_net_income_summary", ElementID: "jpcrp_cor:ProfitLossAttributableToOwnersOfParentSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "Prior1YearDuration", Kind: extract.Int},
	{Field: "prior_net_income_fs", ElementID: "jppfs_cor:ProfitLoss", IFRSElementID: "jpigp_cor:ProfitLossIFRS", Rule: extract.PeriodQualified, Period: "Prior1YearDuration", Kind: extract.Int},

	// Balance sheet.
	{Field: "total_assets_summary", ElementID: "jpcrp_cor:TotalAssetsSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Int},
	{Field: "total_assets_fs", ElementID: "jppfs_cor:Assets", IFRSElementID: "jpigp_cor:AssetsIFRS", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Int},
	{Field: "net_assets_summary", ElementID: "jpcrp_cor:NetAssetsSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Int},
	{Field: "net_assets_fs", ElementID: "jppfs_cor:NetAssets", IFRSElementID: "jpigp_cor:EquityIFRS", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Int},
	{Field: "total_liabilities_fs", ElementID: "jppfs_cor:Liabilities", IFRSElementID: "jpigp_cor:LiabilitiesIFRS", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Int},

	// Balance sheet debt detail.
	{Field: "short_term_loans_payable", ElementID: "jppfs_cor:ShortTermLoansPayable", IFRSElementID: "jpigp_cor:ShortTermBorrowingsIFRS", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Int},
	{Field: "long_term_loans_payable", ElementID: "jppfs_cor:LongTermLoansPayable", IFRSElementID: "jpigp_cor:LongTermBorrowingsIFRS", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Int},
	{Field: "bonds_payable", ElementID: "jppfs_cor:BondsPayable", IFRSElementID: "jpigp_cor:BondsPayableIFRS", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Int},
	{Field: "current_portion_long_term_loans_payable", ElementID: "jppfs_cor:CurrentPortionOfLongTermLoansPayable", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Int},
	{Field: "lease_obligations_current", ElementID: "jppfs_cor:LeaseObligationsCL", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Int},
	{Field: "lease_obligations_noncurrent", ElementID: "jppfs_cor:LeaseObligationsNCL", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Int},
	{Field: "commercial_paper", ElementID: "jppfs_cor:CommercialPaper", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Int},

	// Cash flow, four tiers: GAAP summary, IFRS summary, GAAP
	// statement, IFRS statement.
	{Field: "operating_cf_summary", ElementID: "jpcrp_cor:NetCashProvidedByUsedInOperatingActivitiesSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "operating_cf_ifrs_summary", ElementID: "jpcrp_cor:CashFlowsFromUsedInOperatingActivitiesIFRSSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "operating_cf_cfs", ElementID: "jpcrp_cor:CashFlowsFromOperatingActivities", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "operating_cf_ifrs", ElementID: "jpigp_cor:NetCashProvidedByUsedInOperatingActivitiesIFRS", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "investing_cf_summary", ElementID: "jpcrp_cor:NetCashProvidedByUsedInInvestingActivitiesSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "investing_cf_ifrs_summary", ElementID: "jpcrp_cor:CashFlowsFromUsedInInvestingActivitiesIFRSSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "investing_cf_cfs", ElementID: "jpcrp_cor:CashFlowsFromInvestmentActivities", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "investing_cf_ifrs", ElementID: "jpigp_cor:NetCashProvidedByUsedInInvestingActivitiesIFRS", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "financing_cf_summary", ElementID: "jpcrp_cor:NetCashProvidedByUsedInFinancingActivitiesSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "financing_cf_ifrs_summary", ElementID: "jpcrp_cor:CashFlowsFromUsedInFinancingActivitiesIFRSSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "financing_cf_cfs", ElementID: "jpcrp_cor:CashFlowsFromFinancingActivities", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},
	{Field: "financing_cf_ifrs", ElementID: "jpigp_cor:NetCashProvidedByUsedInFinancingActivitiesIFRS", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Int},

	// Per-share metrics and ratios.
	{Field: "net_assets_per_share", ElementID: "jpcrp_cor:NetAssetsPerShareSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Decimal},
	{Field: "earnings_per_share", ElementID: "jpcrp_cor:BasicEarningsLossPerShareSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Decimal},
	{Field: "equity_ratio", ElementID: "jpcrp_cor:EquityToAssetRatioSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Percent},
	{Field: "roe", ElementID: "jpcrp_cor:RateOfReturnOnEquitySummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYearDuration", Kind: extract.Percent},

	// Employment.
	{Field: "num_employees", ElementID: "jpcrp_cor:NumberOfEmployees", Rule: extract.PeriodQualified, Period: "CurrentYearInstant", Kind: extract.Int},
}

// quarterlyTable covers quarterly reports (doc 140). Income statement
// and cash flow values are year-to-date cumulative, not single-quarter.
var quarterlyTable = []extract.FieldMapping{
	{Field: "revenue_ytd", ElementID: "jppfs_cor:NetSales", IFRSElementID: "jpigp_cor:RevenueIFRS", Rule: extract.PeriodQualified, Period: "CurrentYTDDuration", Kind: extract.Int},
	{Field: "operating_profit_ytd", ElementID: "jppfs_cor:OperatingIncome", IFRSElementID: "jpigp_cor:OperatingProfitLossIFRS", Rule: extract.PeriodQualified, Period: "CurrentYTDDuration", Kind: extract.Int},
	{Field: "ordinary_profit_ytd", ElementID: "jppfs_cor:OrdinaryIncome", Rule: extract.PeriodQualified, Period: "CurrentYTDDuration", Kind: extract.Int},
	{Field: "net_income_ytd", ElementID: "jppfs_cor:ProfitLossAttributableToOwnersOfParent", IFRSElementID: "jpigp_cor:ProfitLossAttributableToOwnersOfParentIFRS", Rule: extract.PeriodQualified, Period: "CurrentYTDDuration", Kind: extract.Int},

	{Field: "prior_revenue_ytd", ElementID: "jppfs_cor:NetSales", IFRSElementID: "jpigp_cor:RevenueIFRS", Rule: extract.PeriodQualified, Period: "Prior1YTDDuration", Kind: extract.Int},
	{Field: "prior_operating_profit_ytd", ElementID: "jppfs_cor:OperatingIncome", IFRSElementID: "jpigp_cor:OperatingProfitLossIFRS", Rule: extract.PeriodQualified, Period: "Prior1YTDDuration", Kind: extract.Int},
	{Field: "prior_ordinary_profit_ytd", ElementID: "jppfs_cor:OrdinaryIncome", Rule: extract.PeriodQualified, Period: "Prior1YTDDuration", Kind: extract.Int},
	{Field: "prior_net_income_ytd", ElementID: "jppfs_cor:ProfitLossAttributableToOwnersOfParent", IFRSElementID: "jpigp_cor:ProfitLossAttributableToOwnersOfParentIFRS", Rule: extract.PeriodQualified, Period: "Prior1YTDDuration", Kind: extract.Int},

	{Field: "total_assets", ElementID: "jppfs_cor:Assets", IFRSElementID: "jpigp_cor:AssetsIFRS", Rule: extract.PeriodQualified, Period: "CurrentQuarterInstant", Kind: extract.Int},
	{Field: "net_assets", ElementID: "jppfs_cor:NetAssets", IFRSElementID: "jpigp_cor:EquityIFRS", Rule: extract.PeriodQualified, Period: "CurrentQuarterInstant", Kind: extract.Int},
	{Field: "total_liabilities", ElementID: "jppfs_cor:Liabilities", IFRSElementID: "jpigp_cor:LiabilitiesIFRS", Rule: extract.PeriodQualified, Period: "CurrentQuarterInstant", Kind: extract.Int},

	{Field: "operating_cash_flow_ytd", ElementID: "jpcrp_cor:NetCashProvidedByUsedInOperatingActivitiesSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYTDDuration", Kind: extract.Int},
	{Field: "investing_cash_flow_ytd", ElementID: "jpcrp_cor:NetCashProvidedByUsedInInvestingActivitiesSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYTDDuration", Kind: extract.Int},
	{Field: "financing_cash_flow_ytd", ElementID: "jpcrp_cor:NetCashProvidedByUsedInFinancingActivitiesSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYTDDuration", Kind: extract.Int},

	{Field: "eps_basic_ytd", ElementID: "jpcrp_cor:BasicEarningsLossPerShareSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentYTDDuration", Kind: extract.Decimal},
	{Field: "equity_ratio", ElementID: "jpcrp_cor:EquityToAssetRatioSummaryOfBusinessResults", Rule: extract.PeriodQualified, Period: "CurrentQuarterInstant", Kind: extract.Percent},

	{Field: "filing_date", ElementID: "jpcrp_cor:FilingDateCoverPage", Rule: extract.Scalar, Kind: extract.Date},
}

// semiAnnualTable covers semi-annual reports (doc 160), filed mostly by
// investment funds. Interim context naming is inconsistent across
// filers, so the balance sheet and income elements extract as scalars.
var semiAnnualTable = []extract.FieldMapping{
	{Field: "total_assets", ElementID: "jppfs_cor:Assets", IFRSElementID: "jpigp_cor:AssetsIFRS", Rule: extract.Scalar, Kind: extract.Int},
	{Field: "current_assets", ElementID: "jppfs_cor:CurrentAssets", IFRSElementID: "jpigp_cor:CurrentAssetsIFRS", Rule: extract.Scalar, Kind: extract.Int},
	{Field: "total_liabilities", ElementID: "jppfs_cor:Liabilities", IFRSElementID: "jpigp_cor:LiabilitiesIFRS", Rule: extract.Scalar, Kind: extract.Int},
	{Field: "current_liabilities", ElementID: "jppfs_cor:CurrentLiabilities", IFRSElementID: "jpigp_cor:CurrentLiabilitiesIFRS", Rule: extract.Scalar, Kind: extract.Int},
	{Field: "net_assets", ElementID: "jppfs_cor:NetAssets", IFRSElementID: "jpigp_cor:EquityIFRS", Rule: extract.Scalar, Kind: extract.Int},
	{Field: "operating_income", ElementID: "jppfs_cor:OperatingIncome", IFRSElementID: "jpigp_cor:OperatingProfitLossIFRS", Rule: extract.Scalar, Kind: extract.Int},
	{Field: "ordinary_income", ElementID: "jppfs_cor:OrdinaryIncome", IFRSElementID: "jpigp_cor:ProfitLossBeforeTaxIFRS", Rule: extract.Scalar, Kind: extract.Int},
	{Field: "net_income", ElementID: "jppfs_cor:ProfitLoss", IFRSElementID: "jpigp_cor:ProfitLossIFRS", Rule: extract.Scalar, Kind: extract.Int},
}

// treasuryTable covers treasury stock buyback reports (doc 220/230).
// Board-meeting acquisitions repeat per resolution context; the group
// members carry the authorization amount, executed amount and
// resolution date for each meeting.
var treasuryTable = []extract.FieldMapping{
	{Field: "document_title", ElementID: "jpcrp-sbr_cor:DocumentTitleCoverPage", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "filing_date", ElementID: "jpcrp-sbr_cor:FilingDateCoverPage", Rule: extract.Scalar, Kind: extract.Date},
	{Field: "company_name", ElementID: "jpcrp-sbr_cor:CompanyNameCoverPage", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "company_name_en", ElementID: "jpcrp-sbr_cor:CompanyNameInEnglishCoverPage", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "address", ElementID: "jpcrp-sbr_cor:AddressOfRegisteredHeadquarterCoverPage", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "representative", ElementID: "jpcrp-sbr_cor:TitleAndNameOfRepresentativeCoverPage", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "reporting_period", ElementID: "jpcrp-sbr_cor:ReportingPeriodCoverPage", Rule: extract.Scalar, Kind: extract.Text},

	{Field: "classes_of_shares", ElementID: "jpcrp-sbr_cor:ClassesOfSharesTextBlock", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "by_shareholders_meeting", ElementID: "jpcrp-sbr_cor:AcquisitionsByResolutionOfShareholdersMeetingTextBlock", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "by_board_meeting", ElementID: "jpcrp-sbr_cor:AcquisitionsByResolutionOfBoardOfDirectorsMeetingTextBlock", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "disposals_text", ElementID: "jpcrp-sbr_cor:DisposalsOfTreasurySharesTextBlock", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "holding_text", ElementID: "jpcrp-sbr_cor:HoldingOfTreasurySharesTextBlock", Rule: extract.Scalar, Kind: extract.Text},

	{Field: "board_meetings", Rule: extract.Repeating, Members: []extract.FieldMapping{
		{Field: "authorized_amount", ElementID: "jpcrp-sbr_cor:TotalAmountOfAcquisitionAuthorizedByBoardOfDirectorsMeeting", Kind: extract.Int},
		{Field: "acquired_amount", ElementID: "jpcrp-sbr_cor:TotalAmountOfSharesAcquiredByResolutionOfBoardOfDirectorsMeeting", Kind: extract.Int},
		{Field: "resolution_date", ElementID: "jpcrp-sbr_cor:DateOfResolutionOfBoardOfDirectorsMeeting", Kind: extract.Date},
	}},
}

// largeHoldingTable covers large shareholding reports (doc 350 family,
// jplvh_cor namespace). Joint filings repeat the ownership totals per
// filer; GetLast picks the aggregate.
var largeHoldingTable = []extract.FieldMapping{
	{Field: "report_indication", ElementID: "jplvh_cor:DocumentTitleCoverPage", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "change_reason", ElementID: "jplvh_cor:ReasonForFilingChangeReportCoverPage", Rule: extract.Scalar, Kind: extract.Text},

	{Field: "filer_edinet_code", ElementID: "jplvh_cor:EDINETCodeDEI", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "filer_name_alt1", ElementID: "jplvh_cor:Name", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "filer_name_alt2", ElementID: "jplvh_cor:FilerNameInJapaneseDEI", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "filer_name_en", ElementID: "jplvh_cor:FilerNameInEnglishDEI", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "filer_address", ElementID: "jplvh_cor:ResidentialAddressOrAddressOfRegisteredHeadquarter", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "filer_business", ElementID: "jplvh_cor:DescriptionOfBusiness", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "filer_type", ElementID: "jplvh_cor:IndividualOrCorporation", Rule: extract.Scalar, Kind: extract.Text},

	{Field: "target_company", ElementID: "jplvh_cor:NameOfIssuer", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "target_ticker", ElementID: "jplvh_cor:SecurityCodeOfIssuer", Rule: extract.Scalar, Kind: extract.Text},

	{Field: "shares_held", ElementID: "jplvh_cor:TotalNumberOfStocksEtcHeld", Rule: extract.Scalar, Kind: extract.Int, GetLast: true},
	{Field: "ownership_pct", ElementID: "jplvh_cor:HoldingRatioOfShareCertificatesEtc", Rule: extract.Scalar, Kind: extract.Percent, GetLast: true},
	{Field: "prior_ownership_pct", ElementID: "jplvh_cor:HoldingRatioOfShareCertificatesEtcPerLastReport", Rule: extract.Scalar, Kind: extract.Percent},
	{Field: "shares_outstanding", ElementID: "jplvh_cor:TotalNumberOfOutstandingStocksEtc", Rule: extract.Scalar, Kind: extract.Int},

	{Field: "purpose", ElementID: "jplvh_cor:PurposeOfHolding", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "important_proposal", ElementID: "jplvh_cor:ActOfMakingImportantProposalEtc", Rule: extract.Scalar, Kind: extract.Text},

	{Field: "filing_date", ElementID: "jplvh_cor:FilingDateCoverPage", Rule: extract.Scalar, Kind: extract.Date},
	{Field: "trigger_date", ElementID: "jplvh_cor:DateWhenFilingRequirementAroseCoverPage", Rule: extract.Scalar, Kind: extract.Date},
	{Field: "base_date", ElementID: "jplvh_cor:BaseDate", Rule: extract.Scalar, Kind: extract.Date},

	{Field: "acquisition_fund_own", ElementID: "jplvh_cor:AmountOfOwnFund", Rule: extract.Scalar, Kind: extract.Int},
	{Field: "acquisition_fund_borrowing", ElementID: "jplvh_cor:TotalAmountOfBorrowings", Rule: extract.Scalar, Kind: extract.Int},
	{Field: "acquisition_fund_other", ElementID: "jplvh_cor:TotalAmountFromOtherSources", Rule: extract.Scalar, Kind: extract.Int},
	{Field: "acquisition_fund_total", ElementID: "jplvh_cor:TotalAmountOfFundingForAcquisition", Rule: extract.Scalar, Kind: extract.Int},
}

// extraordinaryTable covers extraordinary reports (doc 180). Corporate
// filings use jpcrp-esr_cor and fund filings jpsps-esr_cor for the same
// cover-page concepts, so each appears twice and the processor
// coalesces the pair.
var extraordinaryTable = []extract.FieldMapping{
	{Field: "document_title_fund", ElementID: "jpsps-esr_cor:DocumentTitleCoverPage", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "document_title_corp", ElementID: "jpcrp-esr_cor:DocumentTitleCoverPage", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "filing_date_fund", ElementID: "jpsps-esr_cor:FilingDateCoverPage", Rule: extract.Scalar, Kind: extract.Date},
	{Field: "filing_date_corp", ElementID: "jpcrp-esr_cor:FilingDateCoverPage", Rule: extract.Scalar, Kind: extract.Date},
	{Field: "issuer_name", ElementID: "jpsps-esr_cor:IssuerNameCoverPage", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "company_name", ElementID: "jpcrp-esr_cor:CompanyNameCoverPage", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "company_name_en", ElementID: "jpcrp-esr_cor:CompanyNameInEnglishCoverPage", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "representative_fund", ElementID: "jpsps-esr_cor:TitleAndNameOfRepresentativeCoverPage", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "representative_corp", ElementID: "jpcrp-esr_cor:TitleAndNameOfRepresentativeCoverPage", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "address_fund", ElementID: "jpsps-esr_cor:AddressOfRegisteredHeadquarterCoverPage", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "address_corp", ElementID: "jpcrp-esr_cor:AddressOfRegisteredHeadquarterCoverPage", Rule: extract.Scalar, Kind: extract.Text},

	{Field: "reason_fund", ElementID: "jpsps-esr_cor:ReasonForFilingTextBlock", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "reason_corp", ElementID: "jpcrp-esr_cor:ReasonForFilingTextBlock", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "financial_impact", ElementID: "jpcrp-esr_cor:EventWithSignificantEffectsOnFinancialPositionBusinessPerformanceAndCashFlowsTextBlock", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "shareholder_meeting", ElementID: "jpcrp-esr_cor:ResolutionOfShareholdersMeetingTextBlock", Rule: extract.Scalar, Kind: extract.Text},
	{Field: "major_shareholder_change", ElementID: "jpcrp-esr_cor:ChangesInMajorShareholderTextBlock", Rule: extract.Scalar, Kind: extract.Text},
}
