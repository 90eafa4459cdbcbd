package song

import "github.com/ADAning/animal-well-flute-sub000/model"

// sampleSongs are compiled in so the tool works before any song file
// exists.
func sampleSongs() []model.Song {
	return []model.Song{
		{
			Name:        "Simple Scale",
			BPM:         120,
			Description: "scale warm-up across two octaves",
			Jianpu: []model.Element{
				model.Group(model.Scalar(1), model.Scalar(2), model.Scalar(3), model.Scalar(4)),
				model.Group(model.Scalar(5), model.Scalar(6), model.Scalar(7), model.Label("h1")),
				model.Group(model.Label("h1"), model.Scalar(7), model.Scalar(6), model.Scalar(5)),
				model.Group(model.Scalar(4), model.Scalar(3), model.Scalar(2), model.Scalar(1)),
			},
		},
		{
			Name:        "Ode Fragment",
			BPM:         100,
			Description: "first phrase of the Ode to Joy theme",
			Jianpu: []model.Element{
				model.Group(model.Scalar(3), model.Scalar(3), model.Scalar(4), model.Scalar(5)),
				model.Group(model.Scalar(5), model.Scalar(4), model.Scalar(3), model.Scalar(2)),
				model.Group(model.Scalar(1), model.Scalar(1), model.Scalar(2), model.Scalar(3)),
				model.Group(model.Label("3d"), model.Group(model.Scalar(2), model.Scalar(2)), model.Label("-")),
			},
		},
	}
}
