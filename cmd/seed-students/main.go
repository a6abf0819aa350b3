package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/stemsi/exstem-roster/internal/config"
	"github.com/stemsi/exstem-roster/internal/logger"
	"github.com/stemsi/exstem-roster/internal/model"
	"github.com/stemsi/exstem-roster/internal/repository"
	"github.com/stemsi/exstem-roster/internal/service"
	"github.com/stemsi/exstem-roster/internal/storage"
	"golang.org/x/text/language"
)

var names = []string{
	"Budi Santoso", "Siti Aminah", "Andi Pratama", "Rina Wati", "Joko Susilo",
	"Ayu Lestari", "Dodi Kusuma", "Eka Putri", "Fahri Hamzah", "Gita Savitri",
	"Hendra Gunawan", "Ika Sari", "Jamal Mirdad", "Kiki Fatmala", "Lukman Hakim",
	"Maya Septiana", "Nanda Pratama", "Oki Setiana", "Putri Dian", "Qori Maharani",
	"Rafi Ahmad", "Siska Saraswati", "Toni Setiawan", "Umi Kalsum", "Vina Panduwinata",
	"Wahyu Hidayat", "Xena Maharani", "Yudi Pratama", "Zaki Anwar", "Alifia Zahra",
	"Bagas Saputra", "Citra Kirana", "Dimas Anggara", "Elisa Novita", "Fikri Maulana",
	"Gali Rakasiwi", "Hani Hanifah", "Iqbal Ramadhan", "Jasmine Azzahra", "Kevin Sanjaya",
	"Larasati Dewi", "Miko Pambudi", "Nia Ramadhani", "Oscar Lawalata", "Puput Melati",
	"Reza Rahadian", "Sari Nila", "Tigor Siahaan", "Utari Maharani", "Vicky Prasetyo",
}

var specializations = []string{"CS", "Math", "Physics", "Biology"}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	count := flag.Int("n", cfg.SeedCount, "number of students to generate")
	file := flag.String("o", cfg.DefaultFile, "output file, relative to DATA_DIR")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	studentRepo := repository.NewStudentRepository(language.English)
	store := storage.NewJSONFileStore(cfg.DataDir)
	studentService := service.NewStudentService(studentRepo, store, cfg, log)

	fmt.Printf("=== Seeding %d Students ===\n", *count)

	for i := 0; i < *count; i++ {
		name := names[i%len(names)]
		handle := strings.ToLower(strings.ReplaceAll(name, " ", "."))

		req := model.CreateStudentRequest{
			Name:           strings.ReplaceAll(name, " ", "_"),
			Year:           fmt.Sprint(i%4 + 1),
			Email:          fmt.Sprintf("%s.%d@exstem.test", handle, i+1),
			Specialization: specializations[i%len(specializations)],
		}

		if _, err := studentService.Create(req); err != nil {
			fmt.Printf("Error creating student %s (%s): %v\n", req.Name, req.Email, err)
			continue
		}
		if (i+1)%10 == 0 {
			fmt.Printf("Created %d students...\n", i+1)
		}
	}

	n, err := studentService.Save(ctx, *file)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to write roster")
	}

	fmt.Printf("\nSeed completed! Wrote %d/%d students to %s.\n", n, *count, store.Path(*file))
}
