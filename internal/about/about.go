// Package about holds the static "Nosotros" content of the store.
package about

// Section is one titled block of text.
type Section struct {
	Title string
	Body  string
}

// Page is the whole about screen.
type Page struct {
	Title    string
	Subtitle string
	Sections []Section
}

// Content returns the about page.
func Content() Page {
	return Page{
		Title:    "Nosotros",
		Subtitle: "Conoce más sobre nuestra historia, misión y visión como Pastelería 1000 Sabores.",
		Sections: []Section{
			{
				Title: "Nuestra Historia",
				Body: "Pastelería 1000 Sabores celebra su 50° aniversario como un referente en la repostería chilena. " +
					"Famosa por su participación en un récord Guinness en 1995, cuando colaboró en la creación de la torta más grande del mundo. " +
					"Hoy continuamos innovando para mantener viva nuestra tradición dulce y artesanal.",
			},
			{
				Title: "Nuestra Misión",
				Body: "Ofrecer una experiencia dulce y memorable a nuestros clientes, elaborando productos de repostería de alta calidad para todas las ocasiones. " +
					"Celebramos nuestras raíces y fomentamos la creatividad para que cada torta y postre sea una obra única.",
			},
			{
				Title: "Nuestra Visión",
				Body: "Convertirnos en la tienda online líder en repostería en Chile, reconocida por nuestra innovación, calidad y compromiso con la comunidad. " +
					"Buscamos inspirar a nuevos talentos en el mundo de la gastronomía y seguir siendo un símbolo de sabor y tradición.",
			},
		},
	}
}
