package taxonomy

// Default devuelve el árbol de categorías de la tienda. Cuatro niveles como
// máximo: adulto → fútbol → camisetas → clubes/selecciones.
func Default() *Tree {
	return New([]Node{
		{
			ID:   "adulto",
			Name: "Adulto",
			Children: []Node{
				{
					ID:   "futbol",
					Name: "Fútbol",
					Children: []Node{
						{ID: "bermudas", Name: "Bermudas"},
						{
							ID:   "camisetas",
							Name: "Camisetas",
							Children: []Node{
								{ID: "clubes-internacionales", Name: "Clubes Internacionales"},
								{ID: "clubes-nacionales", Name: "Clubes Nacionales"},
								{ID: "selecciones-nacionales", Name: "Selecciones Nacionales"},
							},
						},
						{
							ID:   "camisetas-retro",
							Name: "Camisetas Retro",
							Children: []Node{
								{ID: "retro-clubes-internacionales", Name: "Clubes Internacionales"},
								{ID: "retro-clubes-nacionales", Name: "Clubes Nacionales"},
								{ID: "retro-selecciones-nacionales", Name: "Selecciones Nacionales"},
							},
						},
						{ID: "chupines-entrenamiento", Name: "Chupines de Entrenamiento"},
					},
				},
				{ID: "basquet", Name: "Básquet"},
			},
		},
		{ID: "nino", Name: "Niño"},
	})
}
