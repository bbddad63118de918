package checklist

import "github.com/limbo/cocoon/pkg/entity"

type TemplateItem struct {
	Label       string
	Description string
	Checked     bool
}

type TemplateSection struct {
	Title string
	Items []TemplateItem
}

// Template is the fixed default content a checklist is seeded from.
type Template []TemplateSection

func (t Template) ItemCount() int {
	n := 0
	for _, s := range t {
		n += len(s.Items)
	}
	return n
}

// TemplateFor returns the default template of a checklist type.
func TemplateFor(t entity.ChecklistType) (Template, bool) {
	tpl, ok := templates[t]
	return tpl, ok
}

var templates = map[entity.ChecklistType]Template{
	entity.ChecklistTrousseau: {
		{
			Title: "Pour bébé",
			Items: []TemplateItem{
				{Label: "6 bodies manches courtes", Description: "Taille naissance"},
				{Label: "6 bodies manches longues", Description: "Taille naissance"},
				{Label: "4 pyjamas", Description: "En coton doux", Checked: true},
				{Label: "2 bonnets", Description: "Un fin, un chaud", Checked: true},
				{Label: "2 paires de chaussettes", Description: "Anti-dérapantes"},
				{Label: "1 couverture", Description: "Pour la sortie", Checked: true},
				{Label: "Couches nouveau-né", Description: "Paquet de 30"},
				{Label: "Lingettes pour bébé", Description: "Sans parfum"},
				{Label: "1 tenue de sortie", Description: "Selon la saison"},
			},
		},
		{
			Title: "Pour maman",
			Items: []TemplateItem{
				{Label: "2 chemises de nuit ouvrables", Description: "Pour l'allaitement", Checked: true},
				{Label: "Soutiens-gorge d'allaitement", Description: "2 pièces", Checked: true},
				{Label: "Coussinets d'allaitement", Description: "Jetables ou lavables"},
				{Label: "1 robe de chambre", Description: "Confortable", Checked: true},
				{Label: "Pantoufles", Description: "Antidérapantes", Checked: true},
				{Label: "3 culottes post-partum", Description: "Taille haute"},
				{Label: "Serviettes hygiéniques maternité", Description: "Ultra-absorbantes"},
				{Label: "Trousse de toilette", Description: "Produits habituels"},
			},
		},
		{
			Title: "Soins et hygiène",
			Items: []TemplateItem{
				{Label: "Thermomètre", Description: "Digital frontal"},
				{Label: "Sérum physiologique", Description: "Doses individuelles"},
				{Label: "Compresses stériles", Description: "Pour le cordon", Checked: true},
				{Label: "Crème pour le change", Description: "Contre l'érythème"},
				{Label: "Gel lavant bébé", Description: "Doux et hypoallergénique"},
			},
		},
		{
			Title: "Divers",
			Items: []TemplateItem{
				{Label: "Carte d'identité", Description: "Et carte vitale", Checked: true},
				{Label: "Carnet de maternité", Description: "Avec tous les documents", Checked: true},
				{Label: "Téléphone et chargeur", Description: "Pour rester connectée"},
				{Label: "Appareil photo", Description: "Pour immortaliser les premiers moments"},
				{Label: "Siège auto", Description: "Obligatoire pour la sortie"},
			},
		},
	},
	entity.ChecklistDocuments: {
		{
			Title: "Avant la naissance",
			Items: []TemplateItem{
				{Label: "Déclaration de grossesse", Description: "À envoyer avant la 14ème semaine", Checked: true},
				{Label: "Reconnaissance anticipée", Description: "Si parents non mariés", Checked: true},
				{Label: "Inscription à la maternité", Description: "Confirmation reçue", Checked: true},
				{Label: "Cours de préparation", Description: "8 séances prises en charge"},
				{Label: "Congé maternité", Description: "Déclaration employeur", Checked: true},
			},
		},
		{
			Title: "À apporter à la maternité",
			Items: []TemplateItem{
				{Label: "Carte d'identité", Description: "Les deux parents", Checked: true},
				{Label: "Carte vitale", Description: "À jour", Checked: true},
				{Label: "Carnet de maternité", Description: "Avec tous les résultats", Checked: true},
				{Label: "Carte de groupe sanguin", Description: "Les deux parents"},
				{Label: "Mutuelle", Description: "Attestation à jour"},
			},
		},
		{
			Title: "Après la naissance",
			Items: []TemplateItem{
				{Label: "Déclaration de naissance", Description: "Dans les 5 jours à la mairie"},
				{Label: "Livret de famille", Description: "Demande ou mise à jour"},
				{Label: "Acte de naissance", Description: "Copies à demander"},
				{Label: "Déclaration CAF", Description: "Pour les allocations"},
				{Label: "Assurance maladie", Description: "Rattachement du bébé"},
				{Label: "Mutuelle", Description: "Ajout du bébé"},
				{Label: "Employeur", Description: "Copie acte de naissance"},
			},
		},
	},
	entity.ChecklistBirthPlan: {
		{
			Title: "Déroulement de l'accouchement",
			Items: []TemplateItem{
				{Label: "Péridurale souhaitée", Description: "Analgésie péridurale"},
				{Label: "Position d'accouchement", Description: "Définir vos préférences"},
				{Label: "Musique pendant le travail", Description: "Préparer une playlist"},
				{Label: "Éclairage tamisé", Description: "Ambiance apaisante"},
				{Label: "Liberté de mouvement", Description: "Bouger pendant le travail"},
				{Label: "Peau à peau immédiat", Description: "Dès la naissance"},
			},
		},
		{
			Title: "Accompagnement",
			Items: []TemplateItem{
				{Label: "Présence du partenaire", Description: "Pendant tout le travail"},
				{Label: "Doula ou accompagnante", Description: "Soutien supplémentaire"},
				{Label: "Photos/vidéos autorisées", Description: "Immortaliser les moments"},
				{Label: "Présence lors des soins", Description: "Premier examen du bébé"},
			},
		},
		{
			Title: "Soins du bébé",
			Items: []TemplateItem{
				{Label: "Allaitement maternel", Description: "Mise au sein précoce"},
				{Label: "Vitamine K", Description: "Administration systématique"},
				{Label: "Collyre oculaire", Description: "Prévention infections"},
				{Label: "Don du cordon", Description: "Conservation cellules souches"},
				{Label: "Bain de bébé", Description: "Préférence pour le timing"},
			},
		},
		{
			Title: "Post-partum",
			Items: []TemplateItem{
				{Label: "Cohabitation", Description: "Bébé dans la chambre"},
				{Label: "Durée de séjour", Description: "Sortie précoce ou standard"},
				{Label: "Visites limitées", Description: "Intimité familiale"},
				{Label: "Suivi sage-femme", Description: "À domicile après sortie"},
			},
		},
	},
}
