// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import "sync"

// task is a unit of work for a worker goroutine. The index identifies the
// slot for the result.
type task struct {
	i int
}

// worker executes tasks until the task channel is closed. Errors are
// stored in errs at the index of the task.
func worker(taskCh <-chan task, f func(i int) error, errs []error,
	wg *sync.WaitGroup) {
	defer wg.Done()
	for tk := range taskCh {
		errs[tk.i] = f(tk.i)
	}
}

// runTasks calls f for all i in [0,n) using up to the given number of
// worker goroutines and returns the error of the lowest failing index.
func runTasks(workers, n int, f func(i int) error) error {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := f(i); err != nil {
				return err
			}
		}
		return nil
	}
	errs := make([]error, n)
	taskCh := make(chan task, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go worker(taskCh, f, errs, &wg)
	}
	for i := 0; i < n; i++ {
		taskCh <- task{i: i}
	}
	close(taskCh)
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
