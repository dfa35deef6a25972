package chapters

import "github.com/Epistemic-Technology/guide-splitter/models"

const (
	// SourcePath is the Geneva tax guide 2024, relative to the working directory
	SourcePath = "guidepp-2024-180225.pdf"
	// OutputDir receives one PDF per chapter
	OutputDir = "knowledge/chapters"
)

// Page numbers are 1-indexed as printed in the PDF viewer.
var guide2024 = []models.Chapter{
	{Name: "00_couverture", StartPage: 1, EndPage: 1},
	{Name: "01_table_des_matieres", StartPage: 2, EndPage: 3},
	{Name: "02_agenda", StartPage: 4, EndPage: 4},
	{Name: "03_comment_remplir_ma_declaration", StartPage: 5, EndPage: 9},
	{Name: "04_les_justificatifs", StartPage: 10, EndPage: 10},
	{Name: "05_principales_deductions_2024", StartPage: 11, EndPage: 11},
	{Name: "06_page_de_garde_1", StartPage: 12, EndPage: 12},
	{Name: "07_pages_de_garde_2_3_4", StartPage: 13, EndPage: 16},
	{Name: "08_activite_dependante", StartPage: 17, EndPage: 22},
	{Name: "09_activite_independante", StartPage: 23, EndPage: 24},
	{Name: "10_autres_revenus_et_fortune", StartPage: 25, EndPage: 27},
	{Name: "11_autres_deductions", StartPage: 28, EndPage: 31},
	{Name: "12_immeubles", StartPage: 32, EndPage: 36},
	{Name: "13_interets_et_dettes", StartPage: 37, EndPage: 37},
	{Name: "14_etat_des_titres_et_imputations", StartPage: 38, EndPage: 44},
	{Name: "15_charges_de_famille", StartPage: 45, EndPage: 46},
	{Name: "16_calculs_impots", StartPage: 47, EndPage: 51},
	{Name: "17_informations", StartPage: 52, EndPage: 54},
	{Name: "18_paiement_impot_2024", StartPage: 55, EndPage: 56},
	{Name: "19_contribution_religieuse_volontaire", StartPage: 57, EndPage: 57},
	{Name: "20_contacts_afc", StartPage: 58, EndPage: 58},
	{Name: "21_codes_de_taxation", StartPage: 59, EndPage: 59},
	{Name: "22_index", StartPage: 60, EndPage: 62},
}

// Guide2024 returns a copy of the 2024 guide chapter table in table order
func Guide2024() []models.Chapter {
	out := make([]models.Chapter, len(guide2024))
	copy(out, guide2024)
	return out
}
